package slist

import (
	"cmp"

	"go-slist/enum"
	"go-slist/lib/asserts"
)

// Equal reports whether a and b have the same size and pairwise equal elements.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	asserts.Assert(a != nil && b != nil, enum.LIST_IS_NIL)
	if a.GetSize() != b.GetSize() {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a orders before b lexicographically. A list that is a
// proper prefix of another orders first.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	asserts.Assert(a != nil && b != nil, enum.LIST_IS_NIL)
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if x.value < y.value {
			return true
		}
		if y.value < x.value {
			return false
		}
	}
	return x == nil && y != nil
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Greater(a, b)
}

// Compare returns -1, 0 or +1 by lexicographic order of a and b.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc orders a and b lexicographically using c. The result is the
// first non-zero value returned by c, or -1, 0, +1 when one list is a prefix
// of the other or both are equal; callers should only test its sign.
func CompareFunc[T any](a, b *List[T], c func(x, y T) int) int {
	asserts.Assert(a != nil && b != nil, enum.LIST_IS_NIL)
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if r := c(x.value, y.value); r != 0 {
			return r
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}
