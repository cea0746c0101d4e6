package search

import "container/heap"

// entry is a frontier slot: a pending path, identified by its last node,
// plus the bookkeeping the indexed heap needs.
type entry[S comparable, A any, C Cost] struct {
	n     *node[S, A, C]
	seq   uint64 // insertion order; breaks cost ties
	index int    // position in the heap, -1 once popped
}

// entryHeap is a min-heap ordered by (cost, seq).
type entryHeap[S comparable, A any, C Cost] []*entry[S, A, C]

func (h entryHeap[S, A, C]) Len() int { return len(h) }

func (h entryHeap[S, A, C]) Less(i, j int) bool {
	if h[i].n.cost != h[j].n.cost {
		return h[i].n.cost < h[j].n.cost
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[S, A, C]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[S, A, C]) Push(x any) {
	e := x.(*entry[S, A, C])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[S, A, C]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// frontier is a cost-ordered queue of pending paths holding at most one
// entry per state. It supports decrease-key so a cheaper path to a pending
// state replaces the costlier one in place.
type frontier[S comparable, A any, C Cost] struct {
	h       entryHeap[S, A, C]
	byState map[S]*entry[S, A, C]
	seq     uint64
}

func newFrontier[S comparable, A any, C Cost]() *frontier[S, A, C] {
	return &frontier[S, A, C]{
		h:       make(entryHeap[S, A, C], 0, 16),
		byState: make(map[S]*entry[S, A, C]),
	}
}

func (f *frontier[S, A, C]) Len() int { return f.h.Len() }

// lookup returns the pending node for s, if any.
func (f *frontier[S, A, C]) lookup(s S) (*node[S, A, C], bool) {
	e, ok := f.byState[s]
	if !ok {
		return nil, false
	}
	return e.n, true
}

// push admits n, or replaces the pending entry for the same state.
// The caller guarantees a replacement is strictly cheaper. A replaced
// entry takes a fresh sequence number, ranking it after paths of equal
// cost that were already waiting.
func (f *frontier[S, A, C]) push(n *node[S, A, C]) {
	f.seq++
	if e, ok := f.byState[n.state]; ok {
		e.n = n
		e.seq = f.seq
		heap.Fix(&f.h, e.index)
		return
	}
	e := &entry[S, A, C]{n: n, seq: f.seq}
	heap.Push(&f.h, e)
	f.byState[n.state] = e
}

// pop removes and returns the cheapest, earliest-inserted pending node.
func (f *frontier[S, A, C]) pop() *node[S, A, C] {
	e := heap.Pop(&f.h).(*entry[S, A, C])
	delete(f.byState, e.n.state)

	return e.n
}
