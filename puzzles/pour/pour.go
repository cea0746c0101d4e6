// Package pour solves the two-glass water-pouring puzzle: given glasses of
// capacity X and Y, reach a state where either glass holds exactly the goal
// amount by filling, emptying and pouring one glass into the other.
package pour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

var (
	// ErrBadCapacity is returned for a negative glass capacity.
	ErrBadCapacity = errors.New("pour: capacity must be non-negative")

	// ErrBadStart is returned when a start level is negative or exceeds its capacity.
	ErrBadStart = errors.New("pour: start level outside glass capacity")
)

// State holds the current levels of glass X and glass Y.
type State struct {
	X, Y int
}

func (s State) String() string { return fmt.Sprintf("(%d, %d)", s.X, s.Y) }

// Holds reports whether either glass contains exactly v.
func (s State) Holds(v int) bool { return s.X == v || s.Y == v }

// Action is one pouring move.
type Action int

const (
	PourXY Action = iota // pour X into Y until X is empty or Y is full
	PourYX               // pour Y into X
	FillX
	FillY
	EmptyX
	EmptyY
)

var actionNames = [...]string{
	PourXY: "X->Y",
	PourYX: "X<-Y",
	FillX:  "fill X",
	FillY:  "fill Y",
	EmptyX: "empty X",
	EmptyY: "empty Y",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Successors returns the successor function for glasses of capacity capX and capY.
// Moves that leave the state unchanged are still listed; the search skips them as
// already explored.
func Successors(capX, capY int) search.SuccessorFunc[State, Action] {
	return func(s State) ([]search.Successor[State, Action], error) {
		if s.X < 0 || s.X > capX || s.Y < 0 || s.Y > capY {
			return nil, fmt.Errorf("%w: %v with capacities (%d, %d)", ErrBadStart, s, capX, capY)
		}
		x, y := s.X, s.Y

		var xy, yx State
		if x+y <= capY {
			xy = State{0, x + y}
		} else {
			xy = State{x - (capY - y), capY}
		}
		if x+y <= capX {
			yx = State{x + y, 0}
		} else {
			yx = State{capX, y - (capX - x)}
		}

		return []search.Successor[State, Action]{
			{State: xy, Action: PourXY},
			{State: yx, Action: PourYX},
			{State: State{capX, y}, Action: FillX},
			{State: State{x, capY}, Action: FillY},
			{State: State{0, y}, Action: EmptyX},
			{State: State{x, 0}, Action: EmptyY},
		}, nil
	}
}

// Solve finds the fewest moves from start to a state where either glass holds goal.
// Result.Found is false when the goal amount cannot be measured.
func Solve(capX, capY, goal int, start State, opts ...search.Option) (*search.Result[State, Action, int], error) {
	if capX < 0 || capY < 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrBadCapacity, capX, capY)
	}
	if start.X < 0 || start.X > capX || start.Y < 0 || start.Y > capY {
		return nil, fmt.Errorf("%w: %v with capacities (%d, %d)", ErrBadStart, start, capX, capY)
	}

	isGoal := func(s State) bool { return s.Holds(goal) }

	return search.ShortestPath(start, Successors(capX, capY), isGoal, opts...)
}
