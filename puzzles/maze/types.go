// Package maze defines the grid types, options and sentinel errors used by
// the weighted maze plug-in.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and routing.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNegativeCell indicates a cell with a negative entry cost.
	ErrNegativeCell = errors.New("maze: cell values must be non-negative")
	// ErrBadCell indicates an unparseable character in a text maze.
	ErrBadCell = errors.New("maze: invalid cell character")
	// ErrOutOfBounds indicates an endpoint outside the grid.
	ErrOutOfBounds = errors.New("maze: point out of bounds")
	// ErrBlocked indicates an endpoint on a wall.
	ErrBlocked = errors.New("maze: point is a wall")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 moves N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Direction is a compass move on the grid. Y grows southwards.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

var (
	dirNames   = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	dirOffsets = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

func (d Direction) String() string {
	if d < N || d > NW {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return dirNames[d]
}

// Point is a grid coordinate; it is the search state.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move is the action taken between two cells: the direction and the cost of
// entering the destination cell.
type Move struct {
	Dir  Direction
	Cost int
}

func (m Move) String() string {
	return fmt.Sprintf("%s:%d", m.Dir, m.Cost)
}

// Options contains tunable parameters for a maze.
type Options struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4 movement.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}
