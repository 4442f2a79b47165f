package slist_test

import (
	"fmt"

	"go-slist/datastruct/slist"
)

func ExampleList_EraseAfter() {
	l := slist.Of(1, 2, 3, 4, 5, 6)
	prev := l.BeforeBegin()
	for cur := l.Begin(); cur.Valid(); {
		if cur.Value()%3 == 0 {
			cur = l.EraseAfter(prev)
			continue
		}
		prev = cur
		cur.Next()
	}
	fmt.Println(l, l.GetSize())
	// Output: [1 2 4 5] 4
}

func ExampleList_InsertAfter() {
	l := slist.Of("b", "d")
	l.InsertAfter(l.BeforeBegin(), "a")
	it := l.Begin()
	it.Next()
	l.InsertAfter(it, "c")
	for v := range l.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: a b c d
}

func ExampleLess() {
	fmt.Println(slist.Less(slist.Of(1, 2), slist.Of(1, 2, 3)))
	fmt.Println(slist.Greater(slist.Of(1, 3), slist.Of(1, 2, 9)))
	// Output:
	// true
	// true
}
