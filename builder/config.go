// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn  ("0","1","2",...)
//   • labelFn = nil          (label = ID)
//   • rng     = nil          (Random requires WithSeed/WithRand)
//   • costFn  = DefaultCostFn (constant 1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathfinding/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Optional label strategy: index -> label; nil means label == ID.
	labelFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Cost generator for edges.
	costFn CostFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		labelFn: nil,
		rng:     nil,
		costFn:  DefaultCostFn,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertex returns the vertex for index i under the configured schemes.
func (c builderConfig) vertex(i int) core.Vertex {
	v := core.NewVertex(c.idFn(i))
	if c.labelFn != nil {
		v.Label = c.labelFn(i)
	}

	return v
}
