package search

import (
	"fmt"
	"slices"
	"strings"
)

// Path is an alternating sequence State, Action, State, ..., State.
// It is stored as two parallel slices with len(States) == len(Actions)+1;
// the zero Path is empty and represents no path at all.
type Path[S comparable, A any] struct {
	States  []S
	Actions []A
}

// Step is one transition of a Path.
type Step[S comparable, A any] struct {
	From   S
	Action A
	To     S
}

// Len returns the length of the alternating sequence: 2·len(Actions)+1,
// always odd for a non-empty path, or 0 for the empty path.
func (p Path[S, A]) Len() int {
	if len(p.States) == 0 {
		return 0
	}

	return len(p.States) + len(p.Actions)
}

// Empty reports whether p holds no states.
func (p Path[S, A]) Empty() bool { return len(p.States) == 0 }

// Start returns the first state. It panics on an empty path.
func (p Path[S, A]) Start() S { return p.States[0] }

// End returns the last state. It panics on an empty path.
func (p Path[S, A]) End() S { return p.States[len(p.States)-1] }

// Steps returns the (from, action, to) triples along p.
func (p Path[S, A]) Steps() []Step[S, A] {
	steps := make([]Step[S, A], len(p.Actions))
	for i, a := range p.Actions {
		steps[i] = Step[S, A]{From: p.States[i], Action: a, To: p.States[i+1]}
	}

	return steps
}

// String renders p as "s0 -a1-> s1 -a2-> s2".
func (p Path[S, A]) String() string {
	if p.Empty() {
		return "[]"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", p.States[0])
	for i, a := range p.Actions {
		fmt.Fprintf(&b, " -%v-> %v", a, p.States[i+1])
	}

	return b.String()
}

// Result is the outcome of a search run.
//
// Found == false with a nil error is the "no solution" answer: the reachable
// state space was exhausted (or pruned by MaxDepth/MaxCost) without meeting
// the goal. Path is then empty and Cost is zero.
type Result[S comparable, A any, C Cost] struct {
	Path  Path[S, A]
	Cost  C
	Found bool

	// Expanded counts states whose successors were generated.
	Expanded int
	// Generated counts successor pairs returned by the successor function.
	Generated int
}

// States returns the states of the found path, or nil.
func (r *Result[S, A, C]) States() []S { return r.Path.States }

// Actions returns the actions of the found path, or nil.
func (r *Result[S, A, C]) Actions() []A { return r.Path.Actions }

// node is a link in the parent chain used to rebuild a path.
type node[S comparable, A any, C Cost] struct {
	state  S
	action A
	parent *node[S, A, C]
	cost   C
	depth  int
}

// buildPath walks the parent chain from n back to the root and reverses it.
func buildPath[S comparable, A any, C Cost](n *node[S, A, C]) Path[S, A] {
	states := make([]S, 0, n.depth+1)
	actions := make([]A, 0, n.depth)
	for cur := n; cur != nil; cur = cur.parent {
		states = append(states, cur.state)
		if cur.parent != nil {
			actions = append(actions, cur.action)
		}
	}
	slices.Reverse(states)
	slices.Reverse(actions)

	return Path[S, A]{States: states, Actions: actions}
}
