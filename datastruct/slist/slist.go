package slist

import (
	"fmt"
	"iter"
	"slices"

	"go-slist/enum"
	"go-slist/lib/asserts"
)

// List 是一个单向链表, 头部是一个不存储数据的哨兵节点, 哨兵的后继是第一个元素
//
// The zero value is an empty list ready to use. A List must not be copied by
// value once used, since BeforeBegin refers to the sentinel inside it; use
// Clone or Assign instead. A List is not safe for concurrent use.
type List[T any] struct {
	head node[T] // 哨兵节点, 随List一起存在
	size int     // 元素数量, 不包括哨兵
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding values in the given order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	// 从后往前插入到链表头, 保持原有顺序
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

// FromSeq returns a list holding the values yielded by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	return Of(slices.Collect(seq)...)
}

// Clone returns an independent list with equal values in equal order.
func (l *List[T]) Clone() *List[T] {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	// 先按原顺序缓存所有值, 再逆序插入到链表头
	return Of(l.Values()...)
}

// Assign replaces the contents of l with a copy of src.
//
// The copy is built completely before l is touched, so l is left unchanged
// if copying panics.
func (l *List[T]) Assign(src *List[T]) {
	asserts.Assert(l != nil && src != nil, enum.LIST_IS_NIL)
	if l == src {
		return
	}
	if src.IsEmpty() {
		l.Clear()
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// Swap exchanges the contents of l and other in constant time. Iterators keep
// referring to the same nodes, which now belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	asserts.Assert(l != nil && other != nil, enum.LIST_IS_NIL)
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

func (l *List[T]) GetSize() int {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.GetSize() == 0
}

// PushFront 在链表头插入一个值为v的节点
func (l *List[T]) PushFront(v T) {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront 删除第一个节点, 链表不能为空
func (l *List[T]) PopFront() {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	asserts.Assert(l.size > 0, enum.LIST_IS_EMPTY)
	first := l.head.next
	l.head.next = first.next
	first.release()
	l.size--
}

// InsertAfter 在pos之后插入一个值为v的节点, 返回指向新节点的迭代器
//
// pos 必须是本链表的哨兵(BeforeBegin)或者某个元素, 不能是End
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	prev := pos.at()
	asserts.Assert(prev != nil, enum.ITERATOR_AT_END)
	prev.next = &node[T]{value: v, next: prev.next}
	l.size++
	return Iterator[T]{cursor[T]{n: prev.next}}
}

// EraseAfter 删除pos之后的节点, 返回指向被删节点后继的迭代器
//
// 链表不能为空, pos 必须有后继
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	asserts.Assert(!l.IsEmpty(), enum.LIST_IS_EMPTY)
	prev := pos.at()
	asserts.Assert(prev != nil, enum.ITERATOR_AT_END)
	asserts.Assert(prev.next != nil, enum.NO_SUCCESSOR)
	erased := prev.next
	prev.next = erased.next
	erased.release()
	l.size--
	return Iterator[T]{cursor[T]{n: prev.next}}
}

// Clear 从头部逐个删除节点直到链表为空
func (l *List[T]) Clear() {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	for l.head.next != nil {
		l.PopFront()
	}
}

func (l *List[T]) Begin() Iterator[T] {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	return Iterator[T]{cursor[T]{n: l.head.next}}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position just before the first element. It can be
// passed to InsertAfter and EraseAfter but must not be dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	return Iterator[T]{cursor[T]{n: &l.head, before: true}}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// Front returns the first element, or false if the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	if l.head.next == nil {
		return v, false
	}
	return l.head.next.value, true
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements from front to back in a new slice.
func (l *List[T]) Values() []T {
	asserts.Assert(l != nil, enum.LIST_IS_NIL)
	values := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
