// Package search implements uniform-cost (lowest-cost-first) search over an
// implicit state space described by a successor function and a goal predicate.
//
// States are expanded in non-decreasing order of accumulated path cost using an
// indexed min-heap. A pending state keeps a single frontier entry; when a strictly
// cheaper path to it is generated the entry is updated in place (decrease-key).
//
// Complexity (V = reachable states, E = generated successor pairs):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) for the frontier, the explored map and the parent chain.
package search

import (
	"fmt"
	"math"
)

// FindPath returns the lowest-cost path from start to a state satisfying isGoal.
//
// The path cost is the sum of cost(action) over its actions; a nil cost charges
// 1 per action, which makes the result a fewest-actions path. Among paths of equal
// cost the one discovered first wins.
//
// Outcomes:
//
//   - Result.Found == true:  Path, Cost and diagnostics are populated.
//   - Result.Found == false, err == nil: the reachable space was exhausted
//     (no solution). This is a normal answer, not an error.
//   - err != nil: invalid input (ErrNilSuccessors, ErrNilGoal, ErrOptionViolation),
//     a failing callback (ErrSuccessors, ErrHook), a negative cost (ErrNegativeCost),
//     a path total that overflows C (ErrCostOverflow),
//     a budget (ErrExpansionLimit) or context cancellation.
//
// If isGoal(start) holds, the one-state path is returned without calling successors.
// On an infinite state space without a reachable goal FindPath does not return
// unless a limit or a context deadline is supplied.
func FindPath[S comparable, A any, C Cost](
	start S,
	successors SuccessorFunc[S, A],
	isGoal GoalFunc[S],
	cost CostFunc[A, C],
	opts ...Option,
) (*Result[S, A, C], error) {
	// 1) Validate inputs and options.
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	if isGoal == nil {
		return nil, ErrNilGoal
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if cost == nil {
		cost = Uniform[A, C]()
	}

	// 2) Short-circuit: the start state already satisfies the goal.
	root := &node[S, A, C]{state: start}
	if isGoal(start) {
		return &Result[S, A, C]{Path: buildPath(root), Found: true}, nil
	}

	// 3) Seed the frontier with the start state at cost 0 and run.
	r := &runner[S, A, C]{
		successors: successors,
		isGoal:     isGoal,
		cost:       cost,
		opts:       cfg,
		frontier:   newFrontier[S, A, C](),
		explored:   make(map[S]C),
		res:        &Result[S, A, C]{},
	}
	r.frontier.push(root)

	return r.loop()
}

// runner holds the mutable state of a single FindPath call.
type runner[S comparable, A any, C Cost] struct {
	successors SuccessorFunc[S, A]
	isGoal     GoalFunc[S]
	cost       CostFunc[A, C]
	opts       Options
	frontier   *frontier[S, A, C]
	explored   map[S]C // state → cost at which it was expanded
	res        *Result[S, A, C]
}

// loop pops the cheapest pending path until a goal is popped, the frontier
// drains, a limit is hit or the context is cancelled.
func (r *runner[S, A, C]) loop() (*Result[S, A, C], error) {
	for r.frontier.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the lowest-cost, earliest-inserted path and settle its state.
		n := r.frontier.pop()
		r.explored[n.state] = n.cost

		// 2) A goal popped from a cost-ordered frontier is optimal.
		if r.isGoal(n.state) {
			return r.found(n), nil
		}

		// 3) Respect the expansion budget.
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.res.Expanded)
		}

		// 4) Expand.
		goal, err := r.expand(n)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			return r.found(goal), nil
		}
	}

	// Frontier exhausted: no solution.
	return r.res, nil
}

// expand generates the successors of n and admits those that improve on
// everything already known about them. It returns a goal node only when
// GoalOnGenerate is set and a goal was admitted.
func (r *runner[S, A, C]) expand(n *node[S, A, C]) (*node[S, A, C], error) {
	if err := r.opts.OnExpand(n.state, n.depth); err != nil {
		return nil, fmt.Errorf("%w: at %v: %w", ErrHook, n.state, err)
	}
	r.res.Expanded++

	if r.opts.MaxDepth > 0 && n.depth >= r.opts.MaxDepth {
		return nil, nil
	}

	next, err := r.successors(n.state)
	if err != nil {
		return nil, fmt.Errorf("%w: at %v: %w", ErrSuccessors, n.state, err)
	}
	r.res.Generated += len(next)

	for _, s := range next {
		step := r.cost(s.Action)
		if step < 0 || math.IsNaN(float64(step)) {
			return nil, fmt.Errorf("%w: action %v cost=%v", ErrNegativeCost, s.Action, step)
		}
		newCost := n.cost + step
		if newCost < n.cost {
			return nil, fmt.Errorf("%w: %v + %v at %v", ErrCostOverflow, n.cost, step, n.state)
		}
		if r.opts.MaxCost > 0 && float64(newCost) > r.opts.MaxCost {
			continue
		}

		// Already settled at no worse cost.
		if c, ok := r.explored[s.State]; ok && c <= newCost {
			continue
		}
		// Already pending at no worse cost.
		if pending, ok := r.frontier.lookup(s.State); ok && pending.cost <= newCost {
			continue
		}

		child := &node[S, A, C]{
			state:  s.State,
			action: s.Action,
			parent: n,
			cost:   newCost,
			depth:  n.depth + 1,
		}
		r.frontier.push(child)
		r.opts.OnEnqueue(child.state, child.depth)

		if r.opts.GoalOnGenerate && r.isGoal(child.state) {
			return child, nil
		}
	}

	return nil, nil
}

func (r *runner[S, A, C]) found(n *node[S, A, C]) *Result[S, A, C] {
	r.res.Path = buildPath(n)
	r.res.Cost = n.cost
	r.res.Found = true

	return r.res
}
