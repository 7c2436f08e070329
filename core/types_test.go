// SPDX-License-Identifier: MIT
// Package core_test verifies Vertex identity and Edge rendering.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathfinding/core"
	"github.com/stretchr/testify/assert"
)

// TestVertex_Identity ASSERTS identity is carried by ID alone.
func TestVertex_Identity(t *testing.T) {
	a := core.Vertex{ID: "1", Label: "first"}
	b := core.Vertex{ID: "1", Label: "other"}
	c := core.NewVertex("2")

	assert.True(t, a.Is(b), "same ID, different label must be the same node")
	assert.False(t, a.Is(c))
	assert.Equal(t, "2", c.Label)
	assert.Equal(t, core.NewVertex("7"), core.IntVertex(7))
}

// TestStringers locks in the textual forms used by render and trace output.
func TestStringers(t *testing.T) {
	v := core.Vertex{ID: "x", Label: "Paris"}
	assert.Equal(t, "(Paris)", v.String())

	e := core.Edge{From: core.NewVertex("0"), To: core.NewVertex("1"), Cost: 1}
	assert.Equal(t, "0 --1-> 1", e.String())

	e.Cost = 0.25
	assert.Equal(t, "0 --0.25-> 1", e.String())

	e.Cost = math.Inf(1)
	assert.Equal(t, "0 --+Inf-> 1", e.String())
}
