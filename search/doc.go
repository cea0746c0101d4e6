// Package search provides generic shortest-path search over implicit state spaces:
// a start state, a successor function and a goal predicate, with an optional
// per-action cost.
//
// What
//
//   - FindPath: uniform-cost search (lowest accumulated cost first). Returns the
//     cheapest path to any goal state; ties go to the path discovered first.
//   - ShortestPath: breadth-first search returning a path with the fewest actions,
//     testing the goal as soon as a state is generated.
//   - Path: alternating State, Action, ..., State sequence with States/Actions views.
//   - Functional options for cancellation, expansion/depth/cost limits and hooks.
//
// States
//
//	Any comparable Go type can be a state; it is used as a map key for the
//	explored set and for frontier deduplication. The engine never mutates a state.
//	Actions are opaque labels carried only for path reconstruction.
//
// Failure
//
//	An unreachable goal is a valid answer ("no solution"). It is reported as
//	Result.Found == false with a nil error. Errors are reserved for invalid input,
//	failing callbacks, negative costs, exhausted budgets and cancellation.
//
// Determinism
//
//	The successor function returns an ordered slice. Equal-cost frontier entries are
//	served in insertion order, so identical inputs yield identical paths.
//
// Concurrency
//
//	Every call owns its frontier and explored set; there is no package-level state.
//	Concurrent calls are independent as long as the supplied callbacks are pure.
//
// Termination
//
//	On a finite reachable space every state is expanded at most once. On an infinite
//	space without a reachable goal the search runs forever unless bounded with
//	WithContext, WithMaxExpansions, WithMaxDepth or WithMaxCost.
//
// Complexity (V = reachable states, E = generated successor pairs)
//
//   - FindPath:     Time O((V + E) log V), Memory O(V)
//   - ShortestPath: Time O(V + E),         Memory O(V)
//
// Usage
//
//	res, err := search.FindPath(start, successors, isGoal, func(a Move) int { return a.Time })
//	if err != nil {
//		// ErrNilSuccessors, ErrNilGoal, ErrOptionViolation, ErrSuccessors,
//		// ErrNegativeCost, ErrExpansionLimit, ErrHook or ctx.Err()
//	}
//	if !res.Found {
//		fmt.Println("no solution")
//	}
//	fmt.Println(res.Cost, res.Path.Actions)
package search
