// Package core provides the directed, weighted edge-list Graph used by the
// path finder, together with its Vertex and Edge types.
//
// The Graph G = (V,E) is defined entirely by its edges:
//
//   - E is an ordered list; AddEdge appends, nothing ever removes.
//   - V is derived: the distinct endpoints of E, deduplicated by Vertex.ID,
//     in first-seen order.
//   - Parallel edges and self-loops are accepted silently.
//   - Cost(from,to) consults only the first inserted from→to edge.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                                     // O(1)
//	AddEdge(from, to Vertex)                              // O(1)†, cost DefaultCost
//	AddWeightedEdge(from, to Vertex, cost float64) error  // O(1)†
//
//	// Query
//	Neighbors(v Vertex) []Vertex        // O(deg⁺(v)), insertion order, duplicates kept
//	Cost(from, to Vertex) float64       // O(deg⁺(from)), +Inf when absent
//	Vertices() []Vertex                 // O(V), first-seen order
//	Edges() []Edge                      // O(E), insertion order
//	HasVertex(id string) bool           // O(1)
//	Vertex(id string) (Vertex, bool)    // O(1)
//	VertexCount() int / EdgeCount() int // O(1)
//
//	// Cloning
//	Clone() *Graph                      // O(V+E)
//
// Errors:
//
//	ErrNegativeCost – AddWeightedEdge with cost < 0
//	ErrInvalidCost  – AddWeightedEdge with cost NaN
//
// † amortized: slice append plus one map update per endpoint.
package core
