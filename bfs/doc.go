// Package bfs walks a core.Graph breadth-first, counting hops instead of
// costs.
//
// What
//
//   - Visit vertices in non-decreasing hop count from a start vertex,
//     following directed edges only, From→To.
//   - Return a Tree: the visit Order, the hop Depth of every visited vertex
//     and the Parent it was first reached from. Tree.PathTo rebuilds the
//     fewest-hops path to any visited vertex.
//   - Options: WithContext (cancellation), WithOnVisit (a Visitor per
//     vertex, may abort) and WithMaxDepth (inclusive hop cap, 0 = none).
//
// Why
//
//   - Tell "unreachable" apart from "only through infinite-cost edges" and
//     "beyond the hop cap" when a cheapest-path query finds nothing.
//   - Cross-check cheapest paths on graphs whose edges all cost the same.
//
// Determinism
//
//	Neighbors are discovered in edge insertion order, so the visit sequence
//	is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)
package bfs
