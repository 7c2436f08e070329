// Package builder generates graphs for the path finder from deterministic
// “functional-options” building blocks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:       a closure that appends edges to a core.Graph.
//     – BuildGraph/Apply:  resolve options once, run constructors in order.
//   - Topologies:
//     – Circle(n):         i → (i+1) mod n, a single directed cycle.
//     – Random(n, m):      m distinct ordered pairs drawn without replacement
//     (self-loops allowed); fails with ErrTooManyEdges when m > n².
//     – Path(n):           0 → 1 → … → n-1.
//     – Complete(n):       every ordered pair i ≠ j.
//   - Configuration primitives:
//     – BuilderOption, WithSeed, WithRand, WithIDScheme, WithLabelFn, WithCostFn.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//     – NamedIDs:          scheme by name ("decimal", "excel", "prefixed").
//   - Edge-cost distributions (CostFn implementations):
//     – DefaultCostFn:     constant DefaultEdgeCost (1).
//     – ConstantCostFn:    fixed user-provided value.
//     – UniformCostFn:     uniform ∼U[min,max).
//     – IntegerCostFn:     whole numbers in [min,max].
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     constructor name: errors.Is(err, ErrTooManyEdges).
//   - Same inputs, options and seed ⇒ identical edge sequence.
package builder
