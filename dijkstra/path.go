package dijkstra

import (
	"math"
	"strings"

	"github.com/katalvlaran/pathfinding/core"
)

// noPredecessor marks an unreached vertex (or the source) in Table.prev.
const noPredecessor = -1

// Table is the outcome of ShortestPaths for one source: final distances and
// the predecessor tree. It is owned by the caller and never shared with the
// graph.
type Table struct {
	// Source is the vertex the search started from, as passed by the caller.
	Source core.Vertex

	order []core.Vertex  // g.Vertices() at search time
	index map[string]int // vertex ID → position in order
	dist  []float64      // dist[i] for order[i]
	prev  []int          // prev[i] = index of predecessor, or noPredecessor
}

// Distance returns the final distance to id: +Inf when unreached or unknown.
// The source always reports 0, even when it is not an endpoint of any edge.
func (t *Table) Distance(id string) float64 {
	if i, ok := t.index[id]; ok {
		return t.dist[i]
	}
	if id == t.Source.ID {
		return 0
	}

	return math.Inf(1)
}

// Predecessor returns the vertex right before id on its cheapest path.
// The source and unreached vertices have none.
func (t *Table) Predecessor(id string) (core.Vertex, bool) {
	i, ok := t.index[id]
	if !ok || t.prev[i] == noPredecessor {
		return core.Vertex{}, false
	}

	return t.order[t.prev[i]], true
}

// Distances returns a snapshot of the table in first-seen vertex order.
func (t *Table) Distances() Distances {
	out := make(Distances, len(t.order))
	for i, v := range t.order {
		out[i] = Distance{Vertex: v, Value: t.dist[i]}
	}

	return out
}

// PathTo rebuilds the path from Source to to by walking predecessors back
// from to. When to has no predecessor there is no path, and that includes
// to == Source.
//
// The last vertex of the path is to as given; the others are the vertices
// stored in the graph.
func (t *Table) PathTo(to core.Vertex) Result {
	i, ok := t.index[to.ID]
	if !ok || t.prev[i] == noPredecessor {
		return Result{Cost: math.Inf(1)}
	}

	path := []core.Vertex{to}
	// A predecessor chain is a tree path, so it is at most len(order) long.
	for p := t.prev[i]; p != noPredecessor && len(path) <= len(t.order); p = t.prev[p] {
		path = append(path, t.order[p])
	}

	// Reverse in place to get source → target order.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return Result{Path: path, Cost: t.dist[i]}
}

// Result is the answer to a single-target query.
type Result struct {
	// Path lists the vertices from source to target; nil when no path exists.
	Path []core.Vertex

	// Cost is the total cost of Path, +Inf when no path exists.
	Cost float64
}

// Found reports whether a path exists.
func (r Result) Found() bool { return r.Path != nil }

// IDs returns the vertex IDs along the path.
func (r Result) IDs() []string {
	if r.Path == nil {
		return nil
	}
	ids := make([]string, len(r.Path))
	for i, v := range r.Path {
		ids[i] = v.ID
	}

	return ids
}

// String joins vertex labels with " -> ", or "no path found!" when empty.
func (r Result) String() string {
	if !r.Found() {
		return "no path found!"
	}
	labels := make([]string, len(r.Path))
	for i, v := range r.Path {
		labels[i] = v.Label
	}

	return strings.Join(labels, " -> ")
}
