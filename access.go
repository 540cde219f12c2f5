package fixedarray

import (
	"fmt"
	"unsafe"
)

// Index returns a pointer to element pos without a range check of its own.
// pos must be in [0, Len()); anything else panics like a slice index.
func (a *Array[T]) Index(pos int) *T {
	return &a.buf[pos]
}

func (a *Array[T]) Get(pos int) T {
	return *a.Index(pos)
}

func (a *Array[T]) Set(pos int, v T) {
	*a.Index(pos) = v
}

// At is the checked form of Index. Positions outside [0, Len()) return an
// error wrapping ErrOutOfRange.
func (a *Array[T]) At(pos int) (*T, error) {
	if pos < 0 || pos >= a.Len() {
		return nil, fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, pos, a.Len())
	}
	return a.Index(pos), nil
}

// Front and Back require a non-empty Array.
func (a *Array[T]) Front() *T {
	return a.Index(0)
}

func (a *Array[T]) Back() *T {
	return a.Index(a.Len() - 1)
}

// Pointer returns the base address of the storage, or nil when empty.
func (a *Array[T]) Pointer() *T {
	if a == nil {
		return nil
	}
	return unsafe.SliceData(a.buf)
}

// Data returns the storage as a slice with len == cap == Len(), or nil when
// empty. The slice aliases the Array and is invalidated by Swap, Assign,
// MoveAssign, Move and Release.
func (a *Array[T]) Data() []T {
	return unsafe.Slice(a.Pointer(), a.Len())
}

// Fill overwrites every element with v, in index order.
func (a *Array[T]) Fill(v T) {
	for i := range a.buf {
		a.buf[i] = v
	}
}

// Format prints the elements the way fmt prints a slice.
func (a *Array[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), a.Data())
}
