// Package maze routes through a weighted grid.
//
// Each cell holds a non-negative integer: 0 is a wall, any positive value is
// the cost of entering that cell. A route's cost is the sum of the cells it
// enters, so the starting cell is free.
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Text parsing ('#' wall, '.' cost 1, '1'-'9' explicit cost)
//   - Cheapest route via uniform-cost search
package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Maze is an immutable weighted grid.
// cells[y][x] holds the entry cost; directions are precomputed from Conn.
type Maze struct {
	Width, Height int
	Conn          Connectivity
	cells         [][]int
	dirs          []Direction
}

// New constructs a Maze from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCell on bad input.
// Complexity: O(W×H).
func New(cells [][]int, opts Options) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	grid := make([][]int, h)
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at %v", ErrNegativeCell, v, Point{x, y})
			}
		}
		grid[y] = make([]int, w)
		copy(grid[y], row)
	}

	dirs := []Direction{N, E, S, W}
	if opts.Conn == Conn8 {
		dirs = []Direction{N, NE, E, SE, S, SW, W, NW}
	}

	return &Maze{Width: w, Height: h, Conn: opts.Conn, cells: grid, dirs: dirs}, nil
}

// Parse reads a text maze, one row per line. Blank lines are skipped.
func Parse(r io.Reader, opts Options) (*Maze, error) {
	var cells [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == '#':
				row = append(row, 0)
			case ch == '.':
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrBadCell, ch, line, col+1)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return New(cells, opts)
}

// InBounds reports whether p lies within the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// At returns the entry cost of p; 0 means wall or out of bounds.
func (m *Maze) At(p Point) int {
	if !m.InBounds(p) {
		return 0
	}
	return m.cells[p.Y][p.X]
}

// Open reports whether p is an in-bounds, non-wall cell.
func (m *Maze) Open(p Point) bool {
	return m.At(p) > 0
}

// Successors lists the open neighbors of p in direction order.
func (m *Maze) Successors(p Point) ([]search.Successor[Point, Move], error) {
	next := make([]search.Successor[Point, Move], 0, len(m.dirs))
	for _, d := range m.dirs {
		off := dirOffsets[d]
		q := Point{p.X + off[0], p.Y + off[1]}
		c := m.At(q)
		if c == 0 {
			continue
		}
		next = append(next, search.Successor[Point, Move]{State: q, Action: Move{Dir: d, Cost: c}})
	}

	return next, nil
}

// Cost is the per-action cost: the entry cost recorded in the move.
func Cost(mv Move) int { return mv.Cost }

// Route returns the cheapest route from one point to another.
// Result.Found is false when walls separate them.
func (m *Maze) Route(from, to Point, opts ...search.Option) (*search.Result[Point, Move, int], error) {
	for _, p := range []Point{from, to} {
		if !m.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if !m.Open(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}

	return search.FindPath(from, m.Successors, func(p Point) bool { return p == to }, Cost, opts...)
}

// Render draws the maze with the given points marked '*'.
func (m *Maze) Render(marked []Point) string {
	on := make(map[Point]bool, len(marked))
	for _, p := range marked {
		on[p] = true
	}

	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{x, y}
			switch v := m.cells[y][x]; {
			case on[p]:
				sb.WriteByte('*')
			case v == 0:
				sb.WriteByte('#')
			case v == 1:
				sb.WriteByte('.')
			case v <= 9:
				sb.WriteByte(byte('0' + v))
			default:
				sb.WriteByte('+')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
