package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinding/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is not an endpoint of any edge.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option was given a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Tree.PathTo for a vertex the walk never visited.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Visitor is called once per visited vertex, in visit order, with its hop
// count from the start. A non-nil error stops the walk.
type Visitor func(v core.Vertex, hops int) error

// Option tunes a walk. Invalid values are recorded and reported by BFS as
// ErrOptionViolation.
type Option func(*settings)

type settings struct {
	ctx     context.Context
	visit   Visitor
	maxHops int // 0: unbounded
	err     error
}

func newSettings(opts []Option) settings {
	s := settings{
		ctx:   context.Background(),
		visit: func(core.Vertex, int) error { return nil },
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithOnVisit registers fn as the Visitor. A nil fn is ignored.
func WithOnVisit(fn Visitor) Option {
	return func(s *settings) {
		if fn != nil {
			s.visit = fn
		}
	}
}

// WithMaxDepth stops expanding vertices at the given hop count (inclusive):
// vertices farther than hops from the start are never visited. Zero means
// no limit; a negative value is an ErrOptionViolation.
func WithMaxDepth(hops int) Option {
	return func(s *settings) {
		if hops < 0 {
			s.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, hops)
			return
		}
		s.maxHops = hops
	}
}

// Tree is the breadth-first tree grown from Start.
type Tree struct {
	Start core.Vertex

	// Order lists visited vertices by non-decreasing hop count.
	Order []core.Vertex

	// Depth maps a visited vertex ID to its hop count from Start.
	Depth map[string]int

	// Parent maps a visited vertex ID, Start excluded, to the vertex it was
	// first reached from.
	Parent map[string]core.Vertex
}

// Reached reports whether the vertex with the given ID was visited.
func (t *Tree) Reached(id string) bool {
	_, ok := t.Depth[id]
	return ok
}

// PathTo returns the fewest-hops path Start → … → id through the tree,
// or ErrNotReached when id was not visited.
func (t *Tree) PathTo(id string) ([]core.Vertex, error) {
	hops, ok := t.Depth[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, id)
	}

	path := make([]core.Vertex, hops+1)
	for _, v := range t.Order {
		if v.ID == id {
			path[hops] = v
			break
		}
	}
	for i := hops; i > 0; i-- {
		path[i-1] = t.Parent[path[i].ID]
	}

	return path, nil
}
