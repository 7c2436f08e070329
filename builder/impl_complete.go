// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i≠j, in row-major order: no self-loops.
//   • Cost policy: cfg.costFn(cfg.rng) per edge, drawn in emission order.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(n) for the precomputed vertex slice.

package builder

import (
	"github.com/katalvlaran/pathfinding/core"
)

// Complete returns a Constructor that builds the complete directed graph on
// n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteVertices); err != nil {
			return err
		}

		vs := make([]core.Vertex, n)
		for i := range vs {
			vs[i] = cfg.vertex(i)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(MethodComplete, g, cfg, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
