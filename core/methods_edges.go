// File: methods_edges.go
// Role: Edge insertion and edge-level queries: AddEdge/AddWeightedEdge,
//       Edges/EdgeCount, Neighbors, Cost.
// Determinism:
//   - Edges() and Neighbors() follow insertion order.
//   - Cost() returns the first inserted matching edge.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a unit-cost edge from→to.
//
// Duplicate edges and self-loops are accepted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to Vertex) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.appendEdge(Edge{From: from, To: to, Cost: DefaultCost})
}

// AddWeightedEdge appends an edge from→to with the given cost.
//
// Returns ErrNegativeCost if cost < 0 and ErrInvalidCost if cost is NaN;
// the graph is left untouched in both cases. A cost of +Inf is accepted and
// makes the edge unusable for relaxation.
// Complexity: O(1) amortized.
func (g *Graph) AddWeightedEdge(from, to Vertex, cost float64) error {
	if math.IsNaN(cost) {
		return fmt.Errorf("%w: edge %s→%s", ErrInvalidCost, from.ID, to.ID)
	}
	if cost < 0 {
		return fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeCost, from.ID, to.ID, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.appendEdge(Edge{From: from, To: to, Cost: cost})

	return nil
}

// appendEdge stores e and updates the outgoing and vertex indexes,
// creating them on the first write to a zero Graph.
// Caller must hold the write lock.
func (g *Graph) appendEdge(e Edge) {
	if g.out == nil {
		g.out = make(map[string][]int)
	}
	if g.index == nil {
		g.index = make(map[string]int)
	}
	g.out[e.From.ID] = append(g.out[e.From.ID], len(g.edges))
	g.edges = append(g.edges, e)
	g.remember(e.From)
	g.remember(e.To)
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges, parallel ones included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the To endpoint of every edge leaving v, in insertion
// order. The result holds duplicates when parallel edges exist.
// Complexity: O(deg⁺(v))
func (g *Graph) Neighbors(v Vertex) []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx := g.out[v.ID]
	if len(idx) == 0 {
		return nil
	}
	ns := make([]Vertex, 0, len(idx))
	for _, i := range idx {
		ns = append(ns, g.edges[i].To)
	}

	return ns
}

// Cost returns the cost of the first inserted edge from→to, or +Inf when no
// such edge exists. Later parallel edges are never consulted.
// Complexity: O(deg⁺(from))
func (g *Graph) Cost(from, to Vertex) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, i := range g.out[from.ID] {
		if g.edges[i].To.ID == to.ID {
			return g.edges[i].Cost
		}
	}

	return math.Inf(1)
}
