// Package bridge solves the bridge-and-torch puzzle: people with individual
// crossing times must cross a bridge at night, at most two at a time, and every
// crossing needs the single light. A pair walks at the pace of the slower one.
//
// The solver minimises total elapsed time, so it runs search.FindPath with the
// crossing time as the action cost. Elapsed time is kept out of the state so
// that returning to an earlier arrangement is recognised as a repeat.
package bridge

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvsearch/search"
)

var (
	// ErrTooManyPeople is returned when more people are given than a State can track.
	ErrTooManyPeople = errors.New("bridge: at most 64 people supported")

	// ErrBadTime is returned for a non-positive crossing time.
	ErrBadTime = errors.New("bridge: crossing time must be positive")
)

// Side names a bank of the river.
type Side uint8

const (
	Near Side = iota
	Far
)

func (s Side) String() string {
	if s == Far {
		return "far"
	}
	return "near"
}

// State records who is still on the near bank (bit i set = person i) and
// where the light is.
type State struct {
	Near  uint64
	Light Side
}

// String lists the people on the near bank and the side holding the light.
func (s State) String() string {
	var near []int
	for m := s.Near; m != 0; m &= m - 1 {
		near = append(near, bits.TrailingZeros64(m))
	}
	return fmt.Sprintf("near%v light:%s", near, s.Light)
}

// Crossing moves one or two people with the light. A == B for a single walker.
type Crossing struct {
	A, B int  // person indices
	Time int  // elapsed time of the crossing
	To   Side // destination bank
}

func (c Crossing) String() string {
	arrow := "->"
	if c.To == Near {
		arrow = "<-"
	}
	if c.A == c.B {
		return fmt.Sprintf("%d %s", c.A, arrow)
	}
	return fmt.Sprintf("%d&%d %s", c.A, c.B, arrow)
}

// Cost is the action cost of a crossing: its elapsed time.
func Cost(c Crossing) int { return c.Time }

// Bridge is a puzzle instance.
type Bridge struct {
	times []int
}

// New validates the crossing times and returns a puzzle instance.
func New(times []int) (*Bridge, error) {
	if len(times) > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPeople, len(times))
	}
	for i, t := range times {
		if t <= 0 {
			return nil, fmt.Errorf("%w: person %d has time %d", ErrBadTime, i, t)
		}
	}

	return &Bridge{times: append([]int(nil), times...)}, nil
}

// Start returns the state with everybody and the light on the near bank.
func (b *Bridge) Start() State {
	var all uint64
	if n := len(b.times); n == 64 {
		all = ^uint64(0)
	} else {
		all = (uint64(1) << n) - 1
	}

	return State{Near: all, Light: Near}
}

// Across reports whether everybody has reached the far bank.
func (b *Bridge) Across(s State) bool { return s.Near == 0 }

// Time returns the crossing time of person i.
func (b *Bridge) Time(i int) int { return b.times[i] }

// Successors lists every single or pair crossing from the light's bank,
// in ascending person order.
func (b *Bridge) Successors(s State) ([]search.Successor[State, Crossing], error) {
	group := s.Near
	to := Far
	if s.Light == Far {
		group = b.far(s)
		to = Near
	}

	n := bits.OnesCount64(group)
	next := make([]search.Successor[State, Crossing], 0, n*(n+1)/2)
	for i := 0; i < len(b.times); i++ {
		if group&(1<<i) == 0 {
			continue
		}
		for j := i; j < len(b.times); j++ {
			if group&(1<<j) == 0 {
				continue
			}
			moved := uint64(1)<<i | uint64(1)<<j
			ns := State{Light: to}
			if to == Far {
				ns.Near = s.Near &^ moved
			} else {
				ns.Near = s.Near | moved
			}
			next = append(next, search.Successor[State, Crossing]{
				State:  ns,
				Action: Crossing{A: i, B: j, Time: max(b.times[i], b.times[j]), To: to},
			})
		}
	}

	return next, nil
}

func (b *Bridge) far(s State) uint64 {
	return b.Start().Near &^ s.Near
}

// Solve returns the fastest crossing schedule for the given times.
// Result.Cost is the total elapsed time.
func Solve(times []int, opts ...search.Option) (*search.Result[State, Crossing, int], error) {
	b, err := New(times)
	if err != nil {
		return nil, err
	}

	return search.FindPath(b.Start(), b.Successors, b.Across, Cost, opts...)
}
