// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// impl_random.go - implementation of Random(n, m) constructor.
//
// Model:
//   - The candidate set is every ordered pair (i,j) over n vertices,
//     self-loops included: n² candidates, numbered i*n+j.
//   - m candidates are drawn uniformly at random WITHOUT replacement and
//     added as edges in draw order. The result has no parallel edges.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); m ≥ 0 (else ErrBadEdgeCount).
//   - m ≤ n² (else ErrTooManyEdges), checked before anything else is touched.
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   - Cost policy: cfg.costFn(cfg.rng) per edge. All m pairs are drawn
//     first, then one cost per edge in draw order, so the pair sequence for
//     a seed does not depend on the cost function.
//
// Strategy:
//   - Dense (2m > n²): materialize the candidate list and swap-remove picks.
//   - Sparse: rejection-sample candidate numbers against a seen-set, which
//     avoids the O(n²) list when only a few edges are wanted.
//   Both draw a uniformly random ordered m-subset.
//
// Complexity:
//   - Dense:  Time O(n² + m), Space O(n²).
//   - Sparse: Time O(m) expected, Space O(m).
//
// Determinism:
//   - Fixed seed and options ⇒ identical edge sequence.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinding/core"
)

// Random returns a Constructor that adds nEdges distinct random edges over
// nVertices vertices identified 0..nVertices-1 (through cfg.idFn).
func Random(nVertices, nEdges int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandom, nVertices, MinRandomVertices); err != nil {
			return err
		}
		if err := validateEdgeCount(MethodRandom, nVertices, nEdges); err != nil {
			return err
		}
		if nEdges == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandom, ErrNeedRandSource)
		}

		// 2) Draw candidate numbers.
		total := maxOrderedPairs(nVertices)
		var picks []int64
		if 2*int64(nEdges) > total {
			picks = drawDense(cfg.rng, total, nEdges)
		} else {
			picks = drawSparse(cfg.rng, total, nEdges)
		}

		// 3) Emit edges in draw order.
		n := int64(nVertices)
		for _, p := range picks {
			u := cfg.vertex(int(p / n))
			v := cfg.vertex(int(p % n))
			if err := addEdge(MethodRandom, g, cfg, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// drawDense picks m of the candidates 0..total-1 using a shrinking list.
func drawDense(rng *rand.Rand, total int64, m int) []int64 {
	candidates := make([]int64, total)
	for i := range candidates {
		candidates[i] = int64(i)
	}

	picks := make([]int64, 0, m)
	for len(picks) < m {
		k := rng.Int63n(int64(len(candidates)))
		picks = append(picks, candidates[k])
		last := len(candidates) - 1
		candidates[k] = candidates[last]
		candidates = candidates[:last]
	}

	return picks
}

// drawSparse picks m of the candidates 0..total-1 by rejection sampling.
// Callers guarantee 2m ≤ total, so each draw succeeds with probability ≥ ½.
func drawSparse(rng *rand.Rand, total int64, m int) []int64 {
	seen := make(map[int64]struct{}, m)
	picks := make([]int64, 0, m)
	for len(picks) < m {
		k := rng.Int63n(total)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		picks = append(picks, k)
	}

	return picks
}
