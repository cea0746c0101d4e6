// Package search defines the core types, functional options and sentinel
// errors for uniform-cost and breadth-first search over implicit state spaces.
package search

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by FindPath and ShortestPath.
//
// Note that "no path" is not among them: an exhausted state space is reported
// through Result.Found == false with a nil error.
var (
	// ErrNilSuccessors indicates that no successor function was supplied.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrSuccessors wraps an error returned by the caller's successor function.
	ErrSuccessors = errors.New("search: successor function failed")

	// ErrNegativeCost indicates an action cost below zero (or NaN).
	ErrNegativeCost = errors.New("search: negative action cost")

	// ErrExpansionLimit is returned when the search expands more states than
	// allowed by WithMaxExpansions without reaching a goal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrHook wraps an error returned by an OnExpand hook.
	ErrHook = errors.New("search: hook aborted search")

	// ErrCostOverflow indicates that a path total no longer fits in the cost type.
	ErrCostOverflow = errors.New("search: path cost overflows cost type")
)

// Cost is the numeric type used to accumulate path costs.
// Integer types must be wide enough for the largest path total; a sum that
// wraps around is reported as ErrCostOverflow.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Successor pairs a reachable state with the action that leads to it.
type Successor[S comparable, A any] struct {
	State  S
	Action A
}

// SuccessorFunc enumerates the moves available from a state.
// The order of the returned slice is the discovery order used to break
// ties between equal-cost paths. An empty slice marks a dead end.
type SuccessorFunc[S comparable, A any] func(state S) ([]Successor[S, A], error)

// GoalFunc reports whether a state is an accepted solution.
type GoalFunc[S comparable] func(state S) bool

// CostFunc returns the non-negative cost of taking an action.
type CostFunc[A any, C Cost] func(action A) C

// Uniform returns a CostFunc charging 1 for every action.
func Uniform[A any, C Cost]() CostFunc[A, C] {
	return func(A) C { return 1 }
}

// Option configures a search run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds limits and callbacks for a single search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of expanded states.
	MaxExpansions int

	// MaxDepth, if > 0, stops generating successors beyond this many actions.
	MaxDepth int

	// MaxCost, if > 0, prunes paths whose accumulated cost exceeds it.
	MaxCost float64

	// GoalOnGenerate checks the goal when a successor is admitted instead of
	// when it is popped. Only optimal for uniform action costs.
	GoalOnGenerate bool

	// OnExpand is called before a state's successors are generated.
	// Returning an error aborts the search.
	OnExpand func(state any, depth int) error

	// OnEnqueue is called whenever a state is admitted to the frontier.
	OnEnqueue func(state any, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no limits,
// goal test on pop and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExpand:  func(any, int) error { return nil },
		OnEnqueue: func(any, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  at most n expansions
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth stops the search from generating paths longer than d actions.
// d == 0 disables the limit; d < 0 is invalid.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxCost prunes every path whose accumulated cost exceeds c.
// c == 0 disables the limit; c < 0 is invalid.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%v)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithGoalOnGenerate returns as soon as a goal state is generated rather than
// waiting for it to reach the head of the frontier.
func WithGoalOnGenerate() Option {
	return func(o *Options) {
		o.GoalOnGenerate = true
	}
}

// WithOnExpand registers a hook run before each expansion; returning an
// error from it stops the search.
func WithOnExpand(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a hook run on every frontier admission.
func WithOnEnqueue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
