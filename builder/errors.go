// SPDX-License-Identifier: MIT
// Package: pathfinding/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: n=%d ...: %w".
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a vertex count is smaller than the
// minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadEdgeCount indicates a negative edge count.
var ErrBadEdgeCount = errors.New("builder: edge count must be non-negative")

// ErrTooManyEdges indicates more edges were requested than there are
// distinct ordered vertex pairs (self-loops included), i.e. nbEdges > n².
// Usage: if errors.Is(err, ErrTooManyEdges) { /* lower nbEdges */ }.
var ErrTooManyEdges = errors.New("builder: too many edges")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownIDScheme indicates a vertex ID scheme name that NamedIDs does
// not know.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")
