package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfinding/core"
)

// BFS walks g breadth-first from the vertex with ID startID, following
// edges From→To in insertion order, and returns the resulting Tree.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error once the context is done, or the Visitor's error wrapped
// with the vertex it was raised at. On a mid-walk error the partial Tree is
// returned alongside it; its Order may end with vertices discovered but not
// yet visited.
func BFS(g *core.Graph, startID string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSettings(opts)
	if s.err != nil {
		return nil, s.err
	}
	start, ok := g.Vertex(startID)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	t := &Tree{
		Start:  start,
		Order:  make([]core.Vertex, 0, n),
		Depth:  map[string]int{start.ID: 0},
		Parent: make(map[string]core.Vertex, n),
	}

	// Order doubles as the FIFO queue: t.Order[head:] are discovered but
	// not yet expanded.
	t.Order = append(t.Order, start)
	for head := 0; head < len(t.Order); head++ {
		if err := s.ctx.Err(); err != nil {
			return t, err
		}
		v := t.Order[head]
		hops := t.Depth[v.ID]
		if err := s.visit(v, hops); err != nil {
			return t, fmt.Errorf("bfs: visit %q: %w", v.ID, err)
		}
		if s.maxHops > 0 && hops == s.maxHops {
			continue
		}
		for _, nb := range g.Neighbors(v) {
			if _, seen := t.Depth[nb.ID]; seen {
				continue
			}
			t.Depth[nb.ID] = hops + 1
			t.Parent[nb.ID] = v
			t.Order = append(t.Order, nb)
		}
	}

	return t, nil
}
