// File: methods_vertices.go
// Role: Derived vertex set: Vertices/VertexCount/HasVertex/Vertex.
// Determinism:
//   - Vertices() returns endpoints in first-seen order; for a given ID the
//     first Vertex value seen is the one kept.

package core

// remember records v in the vertex index if its ID is new.
// Caller must hold the write lock.
func (g *Graph) remember(v Vertex) {
	if _, ok := g.index[v.ID]; ok {
		return
	}
	g.index[v.ID] = len(g.vertices)
	g.vertices = append(g.vertices, v)
}

// Vertices returns the distinct edge endpoints in first-seen order.
// Complexity: O(V)
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of distinct edge endpoints.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// HasVertex reports whether id is an endpoint of some edge.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Vertex returns the stored vertex for id.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Vertex{}, false
	}

	return g.vertices[i], true
}
