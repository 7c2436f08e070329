// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Path(1) adds nothing: a vertex only
//     exists through its edges.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Cost policy: cfg.costFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/pathfinding/core"
)

// Path returns a Constructor that builds the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathVertices); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, cfg, cfg.vertex(i-1), cfg.vertex(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
