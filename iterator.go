package fixedarray

import (
	"iter"

	"github.com/rawbytedev/fixedarray/internal/common"
)

// cursor is a position in a contiguous buffer. Forward cursors read buf[pos],
// reverse cursors read buf[pos-1], so both kinds share [0, len] as their
// position range.
type cursor[T any] struct {
	buf []T
	pos int
}

func (c cursor[T]) at(n int) cursor[T] {
	c.pos += n
	return c
}

func (c cursor[T]) equal(o cursor[T]) bool {
	return c.pos == o.pos && common.SameBase(c.buf, o.buf)
}

// Iterator is a mutable forward cursor. It stays valid until the Array it
// came from is swapped, assigned, moved or released.
type Iterator[T any] struct{ c cursor[T] }

func (it Iterator[T]) Get() T            { return it.c.buf[it.c.pos] }
func (it Iterator[T]) Ptr() *T           { return &it.c.buf[it.c.pos] }
func (it Iterator[T]) Set(v T)           { it.c.buf[it.c.pos] = v }
func (it Iterator[T]) Pos() int          { return it.c.pos }
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.c.at(1)} }
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.c.at(-1)} }
func (it Iterator[T]) Advance(n int) Iterator[T] {
	return Iterator[T]{it.c.at(n)}
}

// Distance returns the number of steps from it to last.
func (it Iterator[T]) Distance(last Iterator[T]) int { return last.c.pos - it.c.pos }
func (it Iterator[T]) Equal(o Iterator[T]) bool      { return it.c.equal(o.c) }
func (it Iterator[T]) Less(o Iterator[T]) bool       { return it.c.pos < o.c.pos }
func (it Iterator[T]) Const() ConstIterator[T]       { return ConstIterator[T]{it.c} }

// ConstIterator is the read-only forward cursor.
type ConstIterator[T any] struct{ c cursor[T] }

func (it ConstIterator[T]) Get() T                 { return it.c.buf[it.c.pos] }
func (it ConstIterator[T]) Pos() int               { return it.c.pos }
func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.c.at(1)} }
func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it.c.at(-1)} }
func (it ConstIterator[T]) Advance(n int) ConstIterator[T] {
	return ConstIterator[T]{it.c.at(n)}
}
func (it ConstIterator[T]) Distance(last ConstIterator[T]) int { return last.c.pos - it.c.pos }
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool      { return it.c.equal(o.c) }
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool       { return it.c.pos < o.c.pos }

// ReverseIterator walks from the last element towards the first. Base
// returns the forward iterator one past the element it refers to.
type ReverseIterator[T any] struct{ c cursor[T] }

func (it ReverseIterator[T]) Get() T                   { return it.c.buf[it.c.pos-1] }
func (it ReverseIterator[T]) Ptr() *T                  { return &it.c.buf[it.c.pos-1] }
func (it ReverseIterator[T]) Set(v T)                  { it.c.buf[it.c.pos-1] = v }
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{it.c.at(-1)} }
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{it.c.at(1)} }
func (it ReverseIterator[T]) Advance(n int) ReverseIterator[T] {
	return ReverseIterator[T]{it.c.at(-n)}
}
func (it ReverseIterator[T]) Distance(last ReverseIterator[T]) int { return it.c.pos - last.c.pos }
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool      { return it.c.equal(o.c) }
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool       { return it.c.pos > o.c.pos }
func (it ReverseIterator[T]) Base() Iterator[T]                    { return Iterator[T]{it.c} }
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.c}
}

type ConstReverseIterator[T any] struct{ c cursor[T] }

func (it ConstReverseIterator[T]) Get() T { return it.c.buf[it.c.pos-1] }
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.c.at(-1)}
}
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.c.at(1)}
}
func (it ConstReverseIterator[T]) Advance(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.c.at(-n)}
}
func (it ConstReverseIterator[T]) Distance(last ConstReverseIterator[T]) int {
	return it.c.pos - last.c.pos
}
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool { return it.c.equal(o.c) }
func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool  { return it.c.pos > o.c.pos }
func (it ConstReverseIterator[T]) Base() ConstIterator[T]               { return ConstIterator[T]{it.c} }

func (a *Array[T]) cursorAt(pos int) cursor[T] {
	return cursor[T]{buf: a.Data(), pos: pos}
}

func (a *Array[T]) Begin() Iterator[T] { return Iterator[T]{a.cursorAt(0)} }
func (a *Array[T]) End() Iterator[T]   { return Iterator[T]{a.cursorAt(a.Len())} }

func (a *Array[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{a.cursorAt(0)} }
func (a *Array[T]) CEnd() ConstIterator[T]   { return ConstIterator[T]{a.cursorAt(a.Len())} }

func (a *Array[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{a.cursorAt(a.Len())} }
func (a *Array[T]) REnd() ReverseIterator[T]   { return ReverseIterator[T]{a.cursorAt(0)} }

func (a *Array[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{a.cursorAt(a.Len())}
}
func (a *Array[T]) CREnd() ConstReverseIterator[T] { return ConstReverseIterator[T]{a.cursorAt(0)} }

// Range returns read-only iterators over s, for building an Array from
// storage it does not own.
func Range[T any](s []T) (first, last ConstIterator[T]) {
	c := cursor[T]{buf: s}
	return ConstIterator[T]{c}, ConstIterator[T]{c.at(len(s))}
}

// All yields index/value pairs in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := a.Data()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
