// Package river solves the missionaries-and-cannibals river crossing.
//
// A boat carrying one or two people shuttles between two banks. Whenever the
// cannibals on a bank outnumber a non-zero number of missionaries there, the
// missionaries are eaten and that state is a dead end.
package river

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// ErrBadState is returned for negative head counts or a boat count other than
// exactly one across both banks.
var ErrBadState = errors.New("river: invalid state")

// State counts missionaries, cannibals and boats on bank 1 (start) and bank 2.
type State struct {
	M1, C1, B1 int
	M2, C2, B2 int
}

// Start returns the usual starting arrangement: m missionaries, c cannibals
// and the boat on bank 1.
func Start(m, c int) State {
	return State{M1: m, C1: c, B1: 1}
}

func (s State) String() string {
	return fmt.Sprintf("(%d %d %d | %d %d %d)", s.M1, s.C1, s.B1, s.M2, s.C2, s.B2)
}

// Eaten reports whether missionaries are outnumbered on either bank.
func (s State) Eaten() bool {
	return (s.M1 > 0 && s.C1 > s.M1) || (s.M2 > 0 && s.C2 > s.M2)
}

// Done reports whether nobody and no boat remains on bank 1.
func (s State) Done() bool {
	return s.M1 == 0 && s.C1 == 0 && s.B1 == 0
}

func (s State) validate() error {
	if s.M1 < 0 || s.C1 < 0 || s.M2 < 0 || s.C2 < 0 || s.B1 < 0 || s.B2 < 0 || s.B1+s.B2 != 1 {
		return fmt.Errorf("%w: %v", ErrBadState, s)
	}
	return nil
}

// Trip is a boat crossing with M missionaries and C cannibals aboard.
type Trip struct {
	M, C    int
	Forward bool // bank 1 → bank 2
}

func (t Trip) String() string {
	load := strings.Repeat("M", t.M) + strings.Repeat("C", t.C)
	if t.Forward {
		return load + "->"
	}
	return "<-" + load
}

// boatLoads lists every (m, c) with 1 ≤ m+c ≤ 2, in the order the successor
// function tries them.
var boatLoads = [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}

// Successors lists the crossings available from s. A state where missionaries
// are outnumbered has none.
func Successors(s State) ([]search.Successor[State, Trip], error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Eaten() {
		return nil, nil
	}

	next := make([]search.Successor[State, Trip], 0, len(boatLoads))
	for _, load := range boatLoads {
		m, c := load[0], load[1]
		if s.B1 == 1 {
			if s.M1 < m || s.C1 < c {
				continue
			}
			next = append(next, search.Successor[State, Trip]{
				State:  State{s.M1 - m, s.C1 - c, 0, s.M2 + m, s.C2 + c, 1},
				Action: Trip{M: m, C: c, Forward: true},
			})
			continue
		}
		if s.M2 < m || s.C2 < c {
			continue
		}
		next = append(next, search.Successor[State, Trip]{
			State:  State{s.M1 + m, s.C1 + c, 1, s.M2 - m, s.C2 - c, 0},
			Action: Trip{M: m, C: c},
		})
	}

	return next, nil
}

// Solve returns the fewest crossings that bring everyone from bank 1 to bank 2
// with nobody eaten. Result.Found is false when no safe schedule exists.
func Solve(start State, opts ...search.Option) (*search.Result[State, Trip, int], error) {
	if err := start.validate(); err != nil {
		return nil, err
	}

	isGoal := func(s State) bool { return s.Done() && !s.Eaten() }

	return search.ShortestPath(start, Successors, isGoal, opts...)
}
