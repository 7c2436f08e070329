package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/pathfinding/core"
	"github.com/katalvlaran/pathfinding/dijkstra"
)

// Step kinds reported by Recorder and used as log messages by Logger.
const (
	KindInitial  = "initial"
	KindVisiting = "visiting"
)

// Logger reports every step of a search as a structured log record.
type Logger struct {
	log   *slog.Logger
	level slog.Level
}

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// WithLevel sets the level of emitted records (default slog.LevelDebug).
func WithLevel(level slog.Level) LoggerOption {
	return func(l *Logger) {
		l.level = level
	}
}

// NewLogger returns a Logger writing to log, or to slog.Default() when log is nil.
func NewLogger(log *slog.Logger, opts ...LoggerOption) *Logger {
	if log == nil {
		log = slog.Default()
	}
	l := &Logger{log: log, level: slog.LevelDebug}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Initialized logs the starting table.
func (l *Logger) Initialized(d dijkstra.Distances) {
	l.log.LogAttrs(context.Background(), l.level, KindInitial,
		slog.Any("distances", d),
	)
}

// Visited logs the settled vertex and the table after relaxation.
func (l *Logger) Visited(current core.Vertex, d dijkstra.Distances) {
	l.log.LogAttrs(context.Background(), l.level, KindVisiting,
		slog.String("vertex", current.ID),
		slog.Any("distances", d),
	)
}

// Console writes the step log as plain text lines. Write errors are
// remembered and reported by Err; later steps are dropped.
type Console struct {
	w   io.Writer
	err error
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Initialized writes "initial :" and the table.
func (c *Console) Initialized(d dijkstra.Distances) {
	c.printf("initial :\n")
	c.table(d)
}

// Visited writes "visiting : <label>" and the table.
func (c *Console) Visited(current core.Vertex, d dijkstra.Distances) {
	c.printf("visiting : %s\n", current.Label)
	c.table(d)
}

// Err returns the first write error, if any.
func (c *Console) Err() error { return c.err }

func (c *Console) table(d dijkstra.Distances) {
	if c.err != nil {
		return
	}
	b, err := json.Marshal(d)
	if err != nil {
		c.err = err
		return
	}
	c.printf("%s\n", b)
}

func (c *Console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

// Step is one recorded observer call.
type Step struct {
	Kind      string             // KindInitial or KindVisiting
	Vertex    core.Vertex        // zero for KindInitial
	Distances dijkstra.Distances // snapshot owned by the Recorder
}

// Recorder keeps every step of the searches it observes.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
}

// Initialized records the starting table.
func (r *Recorder) Initialized(d dijkstra.Distances) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Kind: KindInitial, Distances: d})
}

// Visited records the settled vertex and its table.
func (r *Recorder) Visited(current core.Vertex, d dijkstra.Distances) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Kind: KindVisiting, Vertex: current, Distances: d})
}

// Steps returns a copy of the recorded steps in call order.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}

// Visits returns the IDs of the visited vertices in visit order.
func (r *Recorder) Visits() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, s := range r.steps {
		if s.Kind == KindVisiting {
			ids = append(ids, s.Vertex.ID)
		}
	}

	return ids
}

// Reset drops all recorded steps.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
}

// multi fans out to several observers in order.
type multi []dijkstra.Observer

// Multi returns an Observer calling each non-nil obs in order. All of them
// receive the same snapshot, so none may modify it.
func Multi(obs ...dijkstra.Observer) dijkstra.Observer {
	out := make(multi, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

func (m multi) Initialized(d dijkstra.Distances) {
	for _, o := range m {
		o.Initialized(d)
	}
}

func (m multi) Visited(current core.Vertex, d dijkstra.Distances) {
	for _, o := range m {
		o.Visited(current, d)
	}
}
