package fixedarray

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/fixedarray/internal/common"
)

//go:generate mockgen -destination mock_allocator_test.go -package fixedarray . Allocator

// Allocator hands out the single contiguous block an Array owns.
//
// Allocate is never called with n == 0. The returned slice must have
// length n; its contents are overwritten by the caller before they are
// observed. Deallocate receives exactly the slice Allocate returned, once.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
}

// HeapAllocator delegates to the Go runtime. Deallocate is a no-op; the
// garbage collector reclaims the block once the Array drops it.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if _, ok := common.StorageBytes(n, common.ElemSize[T]()); !ok {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrAllocation, n, common.ElemSize[T]())
	}
	return make([]T, n), nil
}

func (HeapAllocator[T]) Deallocate([]T) {}

// allocate wraps a with the checks every construction path relies on.
func allocate[T any](a Allocator[T], n int) ([]T, error) {
	buf, err := a.Allocate(n)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if len(buf) != n {
		if buf != nil {
			a.Deallocate(buf)
		}
		return nil, fmt.Errorf("%w: allocator returned %d elements, want %d", ErrAllocation, len(buf), n)
	}
	return buf, nil
}
