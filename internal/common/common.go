package common

import (
	"math/bits"
	"strconv"
	"unsafe"
)

// ElemSize returns the in-memory width of one T.
func ElemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// MaxAllocBytes is the largest single allocation the runtime accepts for a
// slice backing array on this platform.
func MaxAllocBytes() uint64 {
	if strconv.IntSize == 64 {
		return 1 << 47
	}
	return 1<<31 - 1
}

// StorageBytes returns n*size and reports whether the product fits in a
// single allocation. Zero-width elements always fit.
func StorageBytes(n int, size uintptr) (uint64, bool) {
	if n < 0 {
		return 0, false
	}
	if size == 0 || n == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(n), uint64(size))
	if hi != 0 || lo > MaxAllocBytes() {
		return lo, false
	}
	return lo, true
}

// SameBase reports whether a and b start at the same address. Two nil or
// empty-without-allocation slices share the nil base.
func SameBase[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
