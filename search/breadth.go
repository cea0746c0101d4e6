package search

import "fmt"

// ShortestPath runs breadth-first search from start and returns a path with the
// fewest actions to a state satisfying isGoal.
//
// States are marked explored when generated and the goal is tested on generation,
// so the search stops at the first goal it sees. Result.Cost is the number of
// actions. The same option set as FindPath applies; MaxCost acts on that count.
//
// Found == false with a nil error means no goal is reachable.
func ShortestPath[S comparable, A any](
	start S,
	successors SuccessorFunc[S, A],
	isGoal GoalFunc[S],
	opts ...Option,
) (*Result[S, A, int], error) {
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

	root := &node[S, A, int]{state: start}
	if isGoal(start) {
		return &Result[S, A, int]{Path: buildPath(root), Found: true}, nil
	}

	w := &walker[S, A]{
		successors: successors,
		isGoal:     isGoal,
		opts:       cfg,
		queue:      []*node[S, A, int]{root},
		explored:   map[S]bool{start: true},
		res:        &Result[S, A, int]{},
	}

	return w.loop()
}

// walker encapsulates mutable breadth-first state.
type walker[S comparable, A any] struct {
	successors SuccessorFunc[S, A]
	isGoal     GoalFunc[S]
	opts       Options
	queue      []*node[S, A, int]
	explored   map[S]bool
	res        *Result[S, A, int]
}

func (w *walker[S, A]) loop() (*Result[S, A, int], error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.res.Expanded)
		}

		n := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]

		goal, err := w.expand(n)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			w.res.Path = buildPath(goal)
			w.res.Cost = goal.cost
			w.res.Found = true
			return w.res, nil
		}
	}

	return w.res, nil
}

// expand enqueues every unseen successor of n and returns the first goal among them.
func (w *walker[S, A]) expand(n *node[S, A, int]) (*node[S, A, int], error) {
	if err := w.opts.OnExpand(n.state, n.depth); err != nil {
		return nil, fmt.Errorf("%w: at %v: %w", ErrHook, n.state, err)
	}
	w.res.Expanded++

	nextDepth := n.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil, nil
	}
	if w.opts.MaxCost > 0 && float64(nextDepth) > w.opts.MaxCost {
		return nil, nil
	}

	next, err := w.successors(n.state)
	if err != nil {
		return nil, fmt.Errorf("%w: at %v: %w", ErrSuccessors, n.state, err)
	}
	w.res.Generated += len(next)

	for _, s := range next {
		if w.explored[s.State] {
			continue
		}
		w.explored[s.State] = true

		child := &node[S, A, int]{
			state:  s.State,
			action: s.Action,
			parent: n,
			cost:   nextDepth,
			depth:  nextDepth,
		}
		w.opts.OnEnqueue(child.state, child.depth)
		if w.isGoal(child.state) {
			return child, nil
		}
		w.queue = append(w.queue, child)
	}

	return nil, nil
}
