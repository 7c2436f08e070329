// Package render turns a core.Graph into text: a one-line edge listing and
// a Graphviz DOT document.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinding/core"
)

// Graph lists the edges in insertion order: "edges : [0 --1-> 1, 1 --1-> 0]".
func Graph(g *core.Graph) string {
	edges := g.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}

	return "edges : [" + strings.Join(parts, ", ") + "]"
}

// DOT returns g as a Graphviz digraph named "g".
func DOT(g *core.Graph) string {
	var sb strings.Builder
	_ = WriteDOT(&sb, g) // strings.Builder never fails

	return sb.String()
}

// WriteDOT writes g as a Graphviz digraph named "g".
//
// Vertices whose label differs from their ID are declared first with a
// label attribute; edges follow in insertion order, each labelled with its
// cost.
func WriteDOT(w io.Writer, g *core.Graph) error {
	var sb strings.Builder
	sb.WriteString("digraph g{\n")
	for _, v := range g.Vertices() {
		if v.Label != v.ID {
			fmt.Fprintf(&sb, "  %s [ label=%s ];\n", quote(v.ID), quote(v.Label))
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "  %s -> %s [ label=%s ];\n",
			quote(e.From.ID), quote(e.To.ID),
			quote(strconv.FormatFloat(e.Cost, 'g', -1, 64)))
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// quote makes s a DOT double-quoted string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}
