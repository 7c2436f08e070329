// File: methods_clone.go
// Role: Deep copy of a graph.
// Concurrency:
//   - Read lock on the source for the whole snapshot; the clone is fresh.

package core

// Clone returns an independent copy of g with the same edges in the same
// order, hence the same vertex order and the same cost lookups.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		edges:    make([]Edge, len(g.edges)),
		out:      make(map[string][]int, len(g.out)),
		vertices: make([]Vertex, len(g.vertices)),
		index:    make(map[string]int, len(g.index)),
	}
	copy(clone.edges, g.edges)
	copy(clone.vertices, g.vertices)

	var (
		id  string
		idx []int
		i   int
	)
	for id, idx = range g.out {
		cp := make([]int, len(idx))
		copy(cp, idx)
		clone.out[id] = cp
	}
	for id, i = range g.index {
		clone.index[id] = i
	}

	return clone
}
