package thunk_test

import (
	"fmt"

	"go.llib.dev/lazykit/pkg/thunk"
)

func ExampleNew() {
	expensive := thunk.New(func() int {
		fmt.Println("computing")
		return 42
	})

	fmt.Println(expensive.Force())
	fmt.Println(expensive.Force()) // cached, the init block doesn't run again

	// Output:
	// computing
	// 42
	// 42
}

func ExampleOf() {
	ready := thunk.Of(42)

	fmt.Println(ready.IsEvaluated())
	fmt.Println(ready.Force())

	// Output:
	// true
	// 42
}
