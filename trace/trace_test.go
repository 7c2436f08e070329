package trace_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinding/builder"
	"github.com/katalvlaran/pathfinding/core"
	"github.com/katalvlaran/pathfinding/dijkstra"
	"github.com/katalvlaran/pathfinding/trace"
)

// circle3 returns the directed circle 0→1→2→0.
func circle3(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Circle(3))
	require.NoError(t, err)
	return g
}

func TestRecorder_Steps(t *testing.T) {
	var rec trace.Recorder
	_, err := dijkstra.FindPath(circle3(t), core.IntVertex(0), core.IntVertex(2), dijkstra.WithObserver(&rec))
	require.NoError(t, err)

	steps := rec.Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, trace.KindInitial, steps[0].Kind)
	assert.Equal(t, `{"0":0,"1":+Inf,"2":+Inf}`, steps[0].Distances.String())
	assert.Equal(t, []string{"0", "1", "2"}, rec.Visits())

	last := steps[3]
	assert.Equal(t, trace.KindVisiting, last.Kind)
	assert.Equal(t, "2", last.Vertex.ID)
	d, ok := last.Distances.Get("2")
	require.True(t, ok)
	assert.Equal(t, 2.0, d)

	rec.Reset()
	assert.Empty(t, rec.Steps())
	assert.Nil(t, rec.Visits())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := dijkstra.FindPath(circle3(t), core.IntVertex(0), core.IntVertex(1),
		dijkstra.WithObserver(trace.NewLogger(log)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var first struct {
		Level     string              `json:"level"`
		Msg       string              `json:"msg"`
		Distances map[string]*float64 `json:"distances"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "DEBUG", first.Level)
	assert.Equal(t, trace.KindInitial, first.Msg)
	require.Contains(t, first.Distances, "1")
	assert.Nil(t, first.Distances["1"], "unreached rows encode as null")

	var visit struct {
		Msg    string `json:"msg"`
		Vertex string `json:"vertex"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &visit))
	assert.Equal(t, trace.KindVisiting, visit.Msg)
	assert.Equal(t, "0", visit.Vertex)
}

func TestLogger_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := dijkstra.FindPath(circle3(t), core.IntVertex(0), core.IntVertex(1),
		dijkstra.WithObserver(trace.NewLogger(log)))
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "debug records are below the handler level")

	_, err = dijkstra.FindPath(circle3(t), core.IntVertex(0), core.IntVertex(1),
		dijkstra.WithObserver(trace.NewLogger(log, trace.WithLevel(slog.LevelInfo))))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg=visiting vertex=0 distances="{\"0\":0,\"1\":1,\"2\":+Inf}"`)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := trace.NewConsole(&buf)

	_, err := dijkstra.FindPath(circle3(t), core.IntVertex(0), core.IntVertex(2), dijkstra.WithObserver(c))
	require.NoError(t, err)
	require.NoError(t, c.Err())

	want := strings.Join([]string{
		"initial :",
		`{"0":0,"1":null,"2":null}`,
		"visiting : 0",
		`{"0":0,"1":1,"2":null}`,
		"visiting : 1",
		`{"0":0,"1":1,"2":2}`,
		"visiting : 2",
		`{"0":0,"1":1,"2":2}`,
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestConsole_WriteError(t *testing.T) {
	c := trace.NewConsole(failWriter{})
	_, err := dijkstra.FindPath(circle3(t), core.IntVertex(0), core.IntVertex(2), dijkstra.WithObserver(c))
	require.NoError(t, err, "observer failures do not fail the search")
	assert.ErrorIs(t, c.Err(), errWrite)
}

func TestMulti(t *testing.T) {
	var a, b trace.Recorder
	obs := trace.Multi(&a, nil, &b)

	_, err := dijkstra.FindPath(circle3(t), core.IntVertex(1), core.IntVertex(0), dijkstra.WithObserver(obs))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "0"}, a.Visits())
	assert.Equal(t, a.Steps(), b.Steps())
}
