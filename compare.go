package fixedarray

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements. Lengths are compared first; elements are only visited when
// they match.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *Array[T]) bool {
	return !Equal(a, b)
}

func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	x, y := a.Data(), b.Data()
	for i := range x {
		if !eq(x[i], y[i]) {
			return false
		}
	}
	return true
}

// Less orders a before b when a is shorter than b. Otherwise it falls back to
// an element-wise lexicographic comparison.
//
// The length check runs first and is final when it succeeds, so Less is not
// lexicographic order for arrays of different length: Of(4) is less than
// Of(1, 2, 3) because it is shorter, and Of(1, 2, 3) is also less than Of(4)
// because 1 < 4. Use Compare for plain lexicographic order.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

func LessFunc[T any](a, b *Array[T], less func(x, y T) bool) bool {
	if a.Len() < b.Len() {
		return true
	}
	return lexicographicalLess(a.Data(), b.Data(), less)
}

func lexicographicalLess[T any](x, y []T, less func(x, y T) bool) bool {
	for i := 0; i < len(x) && i < len(y); i++ {
		if less(x[i], y[i]) {
			return true
		}
		if less(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

// Compare is the three-way lexicographic comparison of the elements of a
// and b, with a shorter prefix ordering first. It is not consistent with
// Less.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Data(), b.Data())
}
