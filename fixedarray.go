// Package fixedarray provides Array, a sequence whose length is chosen at
// construction time and never changes afterwards. An Array exclusively owns
// one contiguous block obtained from an Allocator; copies are explicit
// (Clone, Assign) and ownership moves are explicit (Move, MoveAssign, Swap).
//
// Array is not synchronized.
package fixedarray

import (
	"errors"
	"iter"
	"slices"
	"unsafe"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrAllocation = errors.New("allocation failed")
)

type Options[T any] struct {
	Allocator Allocator[T] // nil selects HeapAllocator
}

// noCopy lets go vet flag Arrays copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is a fixed-length sequence of T. The zero value is an empty Array
// backed by HeapAllocator.
//
// buf is nil exactly when the Array is empty; otherwise it holds len(buf)
// initialized elements owned by this Array alone.
type Array[T any] struct {
	noCopy noCopy

	alloc Allocator[T]
	buf   []T
}

// Builder constructs Arrays whose storage comes from one Allocator.
type Builder[T any] struct {
	alloc Allocator[T]
}

func NewBuilder[T any](opts Options[T]) Builder[T] {
	return Builder[T]{alloc: opts.Allocator}
}

func (b Builder[T]) allocator() Allocator[T] {
	if b.alloc == nil {
		return HeapAllocator[T]{}
	}
	return b.alloc
}

// build allocates n elements and hands them to init before the Array
// becomes visible. Preconditions must be checked before calling build.
func (b Builder[T]) build(n int, init func(buf []T)) (*Array[T], error) {
	if n < 0 {
		panic("fixedarray: negative length")
	}
	a := &Array[T]{alloc: b.alloc}
	if n == 0 {
		return a, nil
	}
	buf, err := allocate(b.allocator(), n)
	if err != nil {
		return nil, err
	}
	init(buf[:n])
	a.buf = buf
	return a, nil
}

func (b Builder[T]) Empty() *Array[T] {
	return &Array[T]{alloc: b.alloc}
}

// Make returns n zero-valued elements.
func (b Builder[T]) Make(n int) (*Array[T], error) {
	return b.build(n, func(buf []T) { clear(buf) })
}

// Filled returns n copies of v.
func (b Builder[T]) Filled(n int, v T) (*Array[T], error) {
	return b.build(n, func(buf []T) {
		for i := range buf {
			buf[i] = v
		}
	})
}

// Of copies elems in order.
func (b Builder[T]) Of(elems ...T) (*Array[T], error) {
	return b.build(len(elems), func(buf []T) { copy(buf, elems) })
}

// FromPointer copies n elements starting at p. p may be nil only when n is 0.
func (b Builder[T]) FromPointer(p *T, n int) (*Array[T], error) {
	if n < 0 {
		panic("fixedarray: negative length")
	}
	if p == nil && n > 0 {
		panic("fixedarray: nil pointer with non-zero length")
	}
	return b.build(n, func(buf []T) { copy(buf, unsafe.Slice(p, n)) })
}

// FromRange copies [first, last). last must be reachable from first.
func (b Builder[T]) FromRange(first, last ConstIterator[T]) (*Array[T], error) {
	n := first.Distance(last)
	if n < 0 {
		panic("fixedarray: range end precedes begin")
	}
	return b.build(n, func(buf []T) { copy(buf, first.c.buf[first.c.pos:first.c.pos+n]) })
}

// FromReverseRange copies [first, last) in reverse traversal order.
func (b Builder[T]) FromReverseRange(first, last ConstReverseIterator[T]) (*Array[T], error) {
	n := first.Distance(last)
	if n < 0 {
		panic("fixedarray: range end precedes begin")
	}
	return b.build(n, func(buf []T) {
		it := first
		for i := range buf {
			buf[i] = it.Get()
			it = it.Next()
		}
	})
}

// Collect drains seq and copies what it yielded. The sequence is buffered
// first since its length is unknown up front.
func (b Builder[T]) Collect(seq iter.Seq[T]) (*Array[T], error) {
	tmp := slices.Collect(seq)
	return b.build(len(tmp), func(buf []T) { copy(buf, tmp) })
}

func heapBuilder[T any]() Builder[T] {
	return Builder[T]{}
}

func Empty[T any]() *Array[T] {
	return heapBuilder[T]().Empty()
}

func Make[T any](n int) (*Array[T], error) {
	return heapBuilder[T]().Make(n)
}

func Filled[T any](n int, v T) (*Array[T], error) {
	return heapBuilder[T]().Filled(n, v)
}

func Of[T any](elems ...T) (*Array[T], error) {
	return heapBuilder[T]().Of(elems...)
}

func FromPointer[T any](p *T, n int) (*Array[T], error) {
	return heapBuilder[T]().FromPointer(p, n)
}

func FromRange[T any](first, last ConstIterator[T]) (*Array[T], error) {
	return heapBuilder[T]().FromRange(first, last)
}

func FromReverseRange[T any](first, last ConstReverseIterator[T]) (*Array[T], error) {
	return heapBuilder[T]().FromReverseRange(first, last)
}

func Collect[T any](seq iter.Seq[T]) (*Array[T], error) {
	return heapBuilder[T]().Collect(seq)
}

func (a *Array[T]) allocator() Allocator[T] {
	if a.alloc == nil {
		return HeapAllocator[T]{}
	}
	return a.alloc
}

func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

func (a *Array[T]) Empty() bool {
	return a.Len() == 0
}

// Clone returns an independent copy with its own storage, drawn from the
// same allocator. a is left untouched, including on error.
func (a *Array[T]) Clone() (*Array[T], error) {
	return Builder[T]{alloc: a.alloc}.build(len(a.buf), func(buf []T) { copy(buf, a.buf) })
}

// Move transfers a's storage to a new Array without copying elements and
// leaves a empty.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{alloc: a.alloc, buf: a.buf}
	a.buf = nil
	return m
}

// Move is the function form of (*Array).Move.
func Move[T any](src *Array[T]) *Array[T] {
	return src.Move()
}

// Swap exchanges storage and allocator with other. Elements are not touched.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	a.alloc, other.alloc = other.alloc, a.alloc
	a.buf, other.buf = other.buf, a.buf
}

func Swap[T any](a, b *Array[T]) {
	a.Swap(b)
}

// Assign replaces a's contents with a copy of src. The copy is built before
// a is modified, so on error a keeps its previous contents.
func (a *Array[T]) Assign(src *Array[T]) error {
	if a == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	a.Swap(tmp)
	tmp.Release()
	return nil
}

// MoveAssign takes over src's storage and releases a's previous contents.
// src is left empty.
func (a *Array[T]) MoveAssign(src *Array[T]) {
	if a == src {
		return
	}
	tmp := src.Move()
	a.Swap(tmp)
	tmp.Release()
}

// Release clears every element and returns the storage to its allocator.
// The Array is empty afterwards and may be reused as such.
func (a *Array[T]) Release() {
	if a.buf == nil {
		return
	}
	buf := a.buf
	a.buf = nil
	clear(buf)
	a.allocator().Deallocate(buf)
}
