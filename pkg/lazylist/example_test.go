package lazylist_test

import (
	"fmt"

	"go.llib.dev/lazykit/pkg/lazylist"
)

func ExampleList() {
	list := lazylist.FromSlice([]string{"b", "c"})
	list = list.Push("a")

	for v := range list.Iter() {
		fmt.Println(v)
	}

	// Output:
	// a
	// b
	// c
}

func ExampleList_Push_structuralSharing() {
	base := lazylist.Singleton("shared")

	l1 := base.Push("one")
	l2 := base.Push("two")

	// both lists share base's cells, nothing was copied
	fmt.Println(l1.ToSlice())
	fmt.Println(l2.ToSlice())

	// Output:
	// [one shared]
	// [two shared]
}

func ExampleCons_infiniteList() {
	var naturals func(n int) lazylist.List[int]
	naturals = func(n int) lazylist.List[int] {
		return lazylist.Cons(n, func() lazylist.List[int] {
			return naturals(n + 1)
		})
	}

	fmt.Println(naturals(0).Take(5))

	// Output:
	// [0 1 2 3 4]
}

func ExampleFromSeq() {
	evenNumbers := func(yield func(int) bool) {
		for i := 0; ; i += 2 {
			if !yield(i) {
				return
			}
		}
	}

	list := lazylist.FromSeq(evenNumbers)

	fmt.Println(list.Take(4))

	// Output:
	// [0 2 4 6]
}

func ExampleFilter() {
	naturals := lazylist.FromSeq(func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	multiplesOfThree := lazylist.Filter(naturals, func(v int) bool {
		return v%3 == 0
	})

	fmt.Println(multiplesOfThree.Take(4))

	// Output:
	// [0 3 6 9]
}
