// Package core defines the Vertex, Edge and Graph types the path finder
// operates on.
//
// A Graph is an ordered list of directed, weighted edges. Vertices are not
// stored on their own: the vertex set is derived from edge endpoints, in the
// order those endpoints were first seen.
//
// All Graph methods are safe for concurrent use. Mutations take the write
// lock; queries take the read lock and never modify the graph.
//
// Errors:
//
//	ErrNegativeCost - edge cost below zero.
//	ErrInvalidCost  - edge cost is NaN.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeCost indicates an edge was given a cost below zero.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrInvalidCost indicates an edge was given a NaN cost.
	ErrInvalidCost = errors.New("core: edge cost is not a number")
)

// DefaultCost is the cost of an edge added without an explicit cost.
const DefaultCost float64 = 1

// Vertex is a graph node.
//
// ID is the identity of the vertex: two vertices are the same node iff their
// IDs are equal. Label is for display only.
type Vertex struct {
	// ID uniquely identifies the vertex.
	ID string

	// Label is shown in renderings; it may equal ID.
	Label string
}

// NewVertex returns a Vertex whose Label equals its ID.
func NewVertex(id string) Vertex {
	return Vertex{ID: id, Label: id}
}

// IntVertex returns NewVertex(strconv.Itoa(i)).
func IntVertex(i int) Vertex {
	return NewVertex(strconv.Itoa(i))
}

// Is reports whether v and other are the same node.
func (v Vertex) Is(other Vertex) bool { return v.ID == other.ID }

// String renders the vertex as "(label)".
func (v Vertex) String() string { return "(" + v.Label + ")" }

// Edge is a directed connection From→To with a non-negative Cost.
type Edge struct {
	From Vertex
	To   Vertex
	Cost float64
}

// String renders the edge as "from --cost-> to" using labels.
func (e Edge) String() string {
	return e.From.Label + " --" + strconv.FormatFloat(e.Cost, 'g', -1, 64) + "-> " + e.To.Label
}

// Graph is a directed, weighted multigraph stored as an edge list.
//
// Parallel edges and self-loops are accepted silently. Cost lookups only
// ever see the first edge inserted for a given ordered pair.
//
// The zero value is an empty graph ready to use. A Graph must not be
// copied after first use.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// edges in insertion order.
	edges []Edge

	// out[fromID] = indices into edges, ascending (insertion order).
	out map[string][]int

	// vertices in first-seen order; index[id] is the position in vertices.
	vertices []Vertex
	index    map[string]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		out:   make(map[string][]int),
		index: make(map[string]int),
	}
}
