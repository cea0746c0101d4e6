// Package search_test provides runnable examples for the search package.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// doubleOrIncrement moves from n to n+1 or 2n, bounded at 64.
func doubleOrIncrement(n int) ([]search.Successor[int, string], error) {
	var next []search.Successor[int, string]
	if n+1 <= 64 {
		next = append(next, search.Successor[int, string]{State: n + 1, Action: "+1"})
	}
	if 2*n <= 64 {
		next = append(next, search.Successor[int, string]{State: 2 * n, Action: "*2"})
	}
	return next, nil
}

// ExampleShortestPath finds the fewest moves from 1 to 10.
func ExampleShortestPath() {
	res, err := search.ShortestPath(1, doubleOrIncrement, func(n int) bool { return n == 10 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println("moves:", res.Cost)
	// Output:
	// 1 -+1-> 2 -*2-> 4 -+1-> 5 -*2-> 10
	// moves: 4
}

// ExampleFindPath charges 3 for doubling and 1 for incrementing.
func ExampleFindPath() {
	cost := func(a string) int {
		if a == "*2" {
			return 3
		}
		return 1
	}
	res, err := search.FindPath(1, doubleOrIncrement, func(n int) bool { return n == 10 }, cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println("cost:", res.Cost)
	// Output:
	// 1 -+1-> 2 -+1-> 3 -+1-> 4 -+1-> 5 -*2-> 10
	// cost: 7
}

// ExampleFindPath_noSolution shows that an unreachable goal is an answer, not an error.
func ExampleFindPath_noSolution() {
	res, err := search.FindPath[int, string, int](1, doubleOrIncrement, func(n int) bool { return n > 64 }, nil)
	fmt.Println(res.Found, err)
	// Output: false <nil>
}
