// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that got ≥ min, returning
// "<Method>: n=<got> < min=<min>: ErrTooFewVertices" otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateEdgeCount ensures 0 ≤ m ≤ n², the number of ordered pairs over n
// vertices including self-loops.
// Complexity: O(1) time and space.
func validateEdgeCount(method string, n, m int) error {
	if m < 0 {
		return fmt.Errorf("%s: m=%d: %w", method, m, ErrBadEdgeCount)
	}
	if int64(m) > maxOrderedPairs(n) {
		return fmt.Errorf("%s: too many edges (%d > %d): %w", method, m, maxOrderedPairs(n), ErrTooManyEdges)
	}

	return nil
}

// maxOrderedPairs returns n² without int overflow on 32-bit platforms.
func maxOrderedPairs(n int) int64 {
	return int64(n) * int64(n)
}
