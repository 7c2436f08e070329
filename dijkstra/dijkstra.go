package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathfinding/core"
)

// ShortestPaths settles every vertex of g starting from source and returns
// the resulting distance and predecessor tables.
//
// Steps:
//  1. V = g.Vertices(); dist[v] = +Inf for all v; dist[source] = 0.
//  2. Select the unsettled vertex with the smallest distance (leftmost in V
//     on ties); settle it.
//  3. For each neighbor n of the settled vertex u, in edge insertion order:
//     if dist[u] + g.Cost(u,n) < dist[n], set dist[n] and prev[n] = u.
//  4. Repeat until every vertex is settled.
//
// Equal-cost alternatives never replace an existing predecessor (strict <).
// A source that is not an endpoint of any edge reaches nothing.
//
// The only error is ErrNilGraph.
//
// Complexity:
//
//   - SelectionLinear: Time O(V² + E·d), Space O(V).
//   - SelectionHeap:   Time O((V + E) log V + E·d), Space O(V + E).
//
// where d is the largest out-degree (first-match cost lookup).
func ShortestPaths(g *core.Graph, source core.Vertex, opts ...Option) (*Table, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Prepare state: the runner owns the tables for this call only.
	r := newRunner(g, source, cfg)
	r.init()

	// 4) Main loop
	if cfg.Selection == SelectionHeap {
		r.processHeap()
	} else {
		r.processLinear()
	}

	return r.table, nil
}

// FindPath returns the cheapest path from → to in g.
//
// A missing path is not an error: the returned Result reports Found() ==
// false. This includes from == to, since the source never acquires a
// predecessor.
//
// The only error is ErrNilGraph.
func FindPath(g *core.Graph, from, to core.Vertex, opts ...Option) (Result, error) {
	t, err := ShortestPaths(g, from, opts...)
	if err != nil {
		return Result{}, err
	}

	return t.PathTo(to), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *core.Graph // read-only within the search
	observer Observer    // may be nil
	table    *Table      // distances and predecessors, returned to the caller
	marked   []bool      // marked[i] once order[i] is settled
	pq       nodePQ      // used by processHeap only
}

func newRunner(g *core.Graph, source core.Vertex, cfg Options) *runner {
	order := g.Vertices()
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v.ID] = i
	}

	return &runner{
		g:        g,
		observer: cfg.Observer,
		table: &Table{
			Source: source,
			order:  order,
			index:  index,
			dist:   make([]float64, len(order)),
			prev:   make([]int, len(order)),
		},
		marked: make([]bool, len(order)),
	}
}

// init sets dist = +Inf everywhere except the source and clears predecessors.
func (r *runner) init() {
	t := r.table
	for i := range t.order {
		t.dist[i] = math.Inf(1)
		t.prev[i] = noPredecessor
	}
	if s, ok := t.index[t.Source.ID]; ok {
		t.dist[s] = 0
	}

	if r.observer != nil {
		r.observer.Initialized(t.Distances())
	}
}

// processLinear settles one vertex per iteration, chosen by a full scan.
// Unreachable vertices are settled (and observed) too; relaxing from +Inf
// never improves anything.
func (r *runner) processLinear() {
	for {
		u := r.smallestUnmarked()
		if u < 0 {
			return
		}
		r.visit(u)
	}
}

// smallestUnmarked returns the index of the unsettled vertex with the
// smallest distance, the leftmost one on ties, or -1 when all are settled.
func (r *runner) smallestUnmarked() int {
	best := -1
	for i, d := range r.table.dist {
		if r.marked[i] {
			continue
		}
		if best < 0 || d < r.table.dist[best] {
			best = i
		}
	}

	return best
}

// processHeap is the heap-driven variant of processLinear. Items are ordered
// by (distance, index), so among equal distances the leftmost vertex wins,
// exactly as in the scan. Vertices never reached are never popped.
func (r *runner) processHeap() {
	t := r.table
	s, ok := t.index[t.Source.ID]
	if !ok {
		return
	}

	r.pq = make(nodePQ, 0, len(t.order))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: s, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Skip settled vertices and stale entries.
		if r.marked[item.idx] || item.dist > t.dist[item.idx] {
			continue
		}
		r.visit(item.idx)
	}
}

// visit settles order[u], relaxes its outgoing edges and notifies the observer.
func (r *runner) visit(u int) {
	t := r.table
	current := t.order[u]
	r.marked[u] = true

	for _, n := range r.g.Neighbors(current) {
		v := t.index[n.ID] // every edge endpoint is indexed
		candidate := t.dist[u] + r.g.Cost(current, n)

		// Strict <: the first predecessor found for a distance is kept.
		if candidate < t.dist[v] {
			t.dist[v] = candidate
			t.prev[v] = u
			if r.pq != nil {
				heap.Push(&r.pq, &nodeItem{idx: v, dist: candidate})
			}
		}
	}

	if r.observer != nil {
		r.observer.Visited(current, t.Distances())
	}
}

// nodeItem is a heap entry: a vertex index and the distance it was pushed with.
type nodeItem struct {
	idx  int     // position in first-seen vertex order
	dist float64 // distance at push time
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx).
// Decrease-key is lazy: improved distances push a new entry and the old one
// is discarded when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by first-seen index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
