// Package dijkstra finds cheapest paths on a core.Graph with non-negative
// edge costs.
//
// Overview:
//
//   - ShortestPaths settles every vertex from one source and returns a Table
//     of distances and predecessors.
//   - FindPath runs ShortestPaths and rebuilds the path to a single target.
//   - By default the next vertex is chosen by a linear scan, O(V²) overall.
//     WithSelection(SelectionHeap) switches to a binary heap with the same
//     tie-break, so both strategies return identical paths.
//   - WithObserver exposes the distance table after initialization and after
//     every visit. The search itself never writes output.
//
// Determinism:
//
//   - Vertices are considered in first-seen order (core.Graph.Vertices).
//   - Among equal distances the leftmost unsettled vertex is settled first.
//   - Relaxation uses strict <, so the first predecessor found for a given
//     distance is kept.
//   - Cost lookup is first-match (core.Graph.Cost): parallel edges after the
//     first one for an ordered pair are invisible to the search.
//
// Known limitation:
//
//   - FindPath(g, v, v) reports no path. The source never gets a
//     predecessor, and path reconstruction needs one at the target.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph.
//   - ErrUnknownSelection:
//     Returned by ParseSelection for names other than "linear" and "heap".
//
// A missing path is not an error; check Result.Found().
//
// API reference:
//
//	func ShortestPaths(g *core.Graph, source core.Vertex, opts ...Option) (*Table, error)
//	func FindPath(g *core.Graph, from, to core.Vertex, opts ...Option) (Result, error)
//
//	  - opts:
//	      • WithObserver(Observer):   Initialized + Visited callbacks.
//	      • WithSelection(Selection): SelectionLinear (default) or SelectionHeap.
//
// Thread safety:
//
//   - Each call allocates its own tables, and the graph is only read, so
//     concurrent queries on the same graph are safe.
//   - Observers run on the calling goroutine.
package dijkstra
