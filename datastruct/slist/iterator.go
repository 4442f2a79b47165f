package slist

import (
	"go-slist/enum"
	"go-slist/lib/asserts"
)

// Position is a place in a List that InsertAfter and EraseAfter can work from.
// Both Iterator and ConstIterator are positions; the interface is sealed.
type Position[T any] interface {
	at() *node[T]
}

// cursor 是Iterator和ConstIterator共用的遍历核心
type cursor[T any] struct {
	n      *node[T] // nil 表示 end
	before bool     // n 指向哨兵节点
}

func (c cursor[T]) at() *node[T] {
	return c.n
}

func (c cursor[T]) element() *node[T] {
	asserts.Assert(c.n != nil, enum.ITERATOR_AT_END)
	asserts.Assert(!c.before, enum.DEREF_BEFORE_BEGIN)
	return c.n
}

func (c *cursor[T]) advance() {
	asserts.Assert(c.n != nil, enum.ITERATOR_AT_END)
	c.n = c.n.next
	c.before = false
}

// Iterator is a forward iterator that may modify the element it refers to.
// The zero value refers to no element and equals End().
type Iterator[T any] struct {
	cursor[T]
}

// Value returns the referenced element. The iterator must not be at end or before-begin.
func (it Iterator[T]) Value() T {
	return it.element().value
}

// Ref returns a pointer to the referenced element for in-place modification.
func (it Iterator[T]) Ref() *T {
	return &it.element().value
}

// Set replaces the referenced element.
func (it Iterator[T]) Set(v T) {
	it.element().value = v
}

// Next 前置自增: 移动到后继节点, 返回迭代器自身
func (it *Iterator[T]) Next() *Iterator[T] {
	it.advance()
	return it
}

// PostNext 后置自增: 移动到后继节点, 返回移动前位置的副本
func (it *Iterator[T]) PostNext() Iterator[T] {
	old := *it
	it.advance()
	return old
}

// Valid reports whether the iterator is not at end.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Equal reports whether it and other refer to the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.at()
}

func (it Iterator[T]) NotEqual(other Position[T]) bool {
	return !it.Equal(other)
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a forward iterator that can only read the element it refers to.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it ConstIterator[T]) Value() T {
	return it.element().value
}

func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	it.advance()
	return it
}

func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	old := *it
	it.advance()
	return old
}

func (it ConstIterator[T]) Valid() bool {
	return it.n != nil
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.at()
}

func (it ConstIterator[T]) NotEqual(other Position[T]) bool {
	return !it.Equal(other)
}
