package main

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinding/builder"
	"github.com/katalvlaran/pathfinding/config"
	"github.com/katalvlaran/pathfinding/core"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCircle(t *testing.T) {
	out, logs, err := execute(t, "circle", "--vertices", "4")
	require.NoError(t, err)

	assert.Equal(t, "edges : [0 --1-> 1, 1 --1-> 2, 2 --1-> 3, 3 --1-> 0]\n0 -> 1 -> 2 -> 3\n", out)
	assert.Contains(t, logs, "msg=\"search finished\"")
	assert.Contains(t, logs, "cost=3")
	assert.Regexp(t, `run_id=[0-9a-f-]{36} `, logs)
}

func TestCircle_SelfQuery(t *testing.T) {
	out, _, err := execute(t, "circle", "-n", "3", "--to", "0", "--selection", "heap")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "no path found!\n"), out)
}

func TestCircle_TraceAndDOT(t *testing.T) {
	out, _, err := execute(t, "circle", "-n", "2", "--trace", "--dot")
	require.NoError(t, err)

	want := strings.Join([]string{
		"edges : [0 --1-> 1, 1 --1-> 0]",
		"digraph g{",
		`  "0" -> "1" [ label="1" ];`,
		`  "1" -> "0" [ label="1" ];`,
		"}",
		"initial :",
		`{"0":0,"1":null}`,
		"visiting : 0",
		`{"0":0,"1":1}`,
		"visiting : 1",
		`{"0":0,"1":1}`,
		"0 -> 1",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestCircle_Invalid(t *testing.T) {
	_, _, err := execute(t, "circle", "--vertices", "0")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandom_Seeded(t *testing.T) {
	first, logs, err := execute(t, "random", "--seed", "5", "--log-level", "debug")
	require.NoError(t, err)
	second, _, err := execute(t, "random", "--seed", "5")
	require.NoError(t, err)

	assert.Equal(t, first, second, "a fixed seed reproduces the run")
	assert.True(t, strings.HasPrefix(first, "edges : ["), first)
	assert.Equal(t, 30, strings.Count(first, "-> ")-strings.Count(lastLine(first), "-> "),
		"30 edges listed")
	assert.Contains(t, logs, "seed=5")
	assert.Contains(t, logs, "msg=visiting", "debug level logs the search steps")
}

func TestRandom_TooManyEdges(t *testing.T) {
	_, _, err := execute(t, "random", "-n", "3", "-m", "10", "--seed", "1")
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)
}

func TestDemo_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
seed: 3
scenarios:
  - name: small
    kind: circle
    vertices: 3
    from: "1"
    to: "0"
  - name: empty
    kind: random
    vertices: 4
    edges: 0
    from: "0"
    to: "3"
`), 0o644))

	out, logs, err := execute(t, "demo", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, "edges : [0 --1-> 1, 1 --1-> 2, 2 --1-> 0]\n1 -> 2 -> 0\nedges : []\nno path found!\n", out)
	assert.Empty(t, logs, "warn level hides info records")
}

func TestBadFlags(t *testing.T) {
	_, _, err := execute(t, "demo", "--selection", "fibonacci")
	assert.Error(t, err)

	_, _, err = execute(t, "demo", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// lastLine returns the last non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestNoPathReason(t *testing.T) {
	_, logs, err := execute(t, "circle", "-n", "3", "--to", "7")
	require.NoError(t, err)
	assert.Contains(t, logs, `reason="target unreachable" reachable=3 farthest="0 -> 1 -> 2"`)

	_, logs, err = execute(t, "circle", "-n", "6", "--to", "9", "--explain-hops", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, `reason="target not within hop limit" reachable=3 farthest="0 -> 1 -> 2"`)

	_, logs, err = execute(t, "circle", "-n", "3", "--from", "9")
	require.NoError(t, err)
	assert.Contains(t, logs, `reason="bfs: start vertex not found"`)

	_, logs, err = execute(t, "circle", "-n", "3", "--to", "0")
	require.NoError(t, err)
	assert.Contains(t, logs, `reason="source is target"`)

	_, _, err = execute(t, "circle", "--explain-hops", "-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// attrMap flattens attrs to key → rendered value.
func attrMap(attrs []slog.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value.String()
	}
	return m
}

func TestExplainMissing(t *testing.T) {
	a, b, c := core.NewVertex("a"), core.NewVertex("b"), core.NewVertex("c")
	g := core.NewGraph()
	g.AddEdge(a, b)
	require.NoError(t, g.AddWeightedEdge(b, c, math.Inf(1)))
	s := config.Scenario{From: "a", To: "c"}

	assert.Equal(t, map[string]string{
		"reason": "target behind infinite-cost edges",
		"via":    "a -> b -> c",
	}, attrMap(explainMissing(context.Background(), g, s, 0)))

	assert.Equal(t, map[string]string{
		"reason":    "target not within hop limit",
		"reachable": "2",
		"farthest":  "a -> b",
	}, attrMap(explainMissing(context.Background(), g, s, 1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, map[string]string{"reason": context.Canceled.Error()},
		attrMap(explainMissing(ctx, g, s, 0)))
}

func TestIDSchemes(t *testing.T) {
	out, _, err := execute(t, "circle", "-n", "3", "--ids", "excel")
	require.NoError(t, err)
	assert.Equal(t, "edges : [A --1-> B, B --1-> C, C --1-> A]\nA -> B -> C\n", out)

	out, logs, err := execute(t, "circle", "-n", "3", "--ids", "prefixed", "--prefix", "city-", "--from", "city-1")
	require.NoError(t, err)
	assert.Equal(t, "edges : [city-0 --1-> city-1, city-1 --1-> city-2, city-2 --1-> city-0]\ncity-1 -> city-2\n", out)
	assert.Contains(t, logs, "from=city-1 to=city-2")

	_, _, err = execute(t, "circle", "--ids", "roman")
	assert.ErrorIs(t, err, builder.ErrUnknownIDScheme)
}

func TestDemo_IDScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - name: letters
    kind: circle
    vertices: 4
    ids: excel
    from: B
    to: A
`), 0o644))

	out, _, err := execute(t, "demo", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "edges : [A --1-> B, B --1-> C, C --1-> D, D --1-> A]\nB -> C -> D -> A\n", out)
}
