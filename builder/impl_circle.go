// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// impl_circle.go - implementation of Circle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). Circle(1) is the single self-loop 0→0.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1, so vertex
//     first-seen order is 0,1,...,n-1.
//   • Cost policy: cfg.costFn(cfg.rng) per edge (constant 1 by default).
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/pathfinding/core"
)

// Circle returns a Constructor that builds a single directed cycle through
// n vertices.
func Circle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCircle, n, MinCircleVertices); err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCircle, g, cfg, cfg.vertex(i), cfg.vertex((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
