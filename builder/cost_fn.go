// Package builder provides internal helper functions and types
// for configuring edge-cost distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinding/core"
)

// DefaultEdgeCost is the cost assigned to each edge when no custom CostFn
// is provided; it matches core.DefaultCost.
const DefaultEdgeCost = core.DefaultCost

// CostFn produces an edge cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and must not return a
// negative cost.
type CostFn func(rng *rand.Rand) float64

// DefaultCostFn always returns DefaultEdgeCost.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultCostFn(_ *rand.Rand) float64 {
	return DefaultEdgeCost
}

// ConstantCostFn returns a CostFn that always yields the provided value.
// Panics if value < 0.
func ConstantCostFn(value float64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeCost to maintain deterministic fallback.
func UniformCostFn(min, max float64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeCost
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerCostFn returns a CostFn sampling whole numbers uniformly in
// [min, max]. Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeCost.
func IntegerCostFn(min, max int) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeCost
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantCost sets a fixed edge cost via ConstantCostFn.
func WithConstantCost(c float64) BuilderOption {
	return WithCostFn(ConstantCostFn(c))
}

// WithUniformCost sets costs ∼ U[min,max) via UniformCostFn.
func WithUniformCost(min, max float64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithIntegerCost sets whole-number costs in [min,max] via IntegerCostFn.
func WithIntegerCost(min, max int) BuilderOption {
	return WithCostFn(IntegerCostFn(min, max))
}
