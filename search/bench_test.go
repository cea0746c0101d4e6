package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/search"
)

// cell is a point on an open size×size grid.
type cell struct{ x, y int }

func gridSuccessors(size int) search.SuccessorFunc[cell, int] {
	return func(c cell) ([]search.Successor[cell, int], error) {
		next := make([]search.Successor[cell, int], 0, 4)
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nx, ny := c.x+d[0], c.y+d[1]
			if nx < 0 || ny < 0 || nx >= size || ny >= size {
				continue
			}
			// weight varies with position so decrease-key is exercised
			next = append(next, search.Successor[cell, int]{State: cell{nx, ny}, Action: 1 + (nx*7+ny*3)%5})
		}
		return next, nil
	}
}

// BenchmarkFindPath_Grid measures uniform-cost search corner to corner on a 100×100 grid.
func BenchmarkFindPath_Grid(b *testing.B) {
	const size = 100
	succ := gridSuccessors(size)
	goal := func(c cell) bool { return c.x == size-1 && c.y == size-1 }
	cost := func(w int) int { return w }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindPath(cell{}, succ, goal, cost)
	}
}

// BenchmarkShortestPath_Grid measures breadth-first search on the same grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const size = 100
	succ := gridSuccessors(size)
	goal := func(c cell) bool { return c.x == size-1 && c.y == size-1 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.ShortestPath(cell{}, succ, goal)
	}
}

// BenchmarkFindPath_Chain measures a long unbranched chain.
func BenchmarkFindPath_Chain(b *testing.B) {
	const n = 10000
	goal := func(v int) bool { return v == n }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindPath[int, string, int](0, counter, goal, nil)
	}
}
