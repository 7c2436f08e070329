// Package config loads the runtime settings of the pathfinding command:
// logging, search tracing, the selection strategy, the random seed and the
// demo scenarios.
//
// Sources, later overriding earlier:
//
//  1. Default()
//  2. a YAML file (optional)
//  3. PATHFINDING_* environment variables
//
// The result is checked by Validate before Load returns it.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinding/dijkstra"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "PATHFINDING_LOG_LEVEL"
	EnvLogFormat = "PATHFINDING_LOG_FORMAT"
	EnvSeed      = "PATHFINDING_SEED"
	EnvSelection = "PATHFINDING_SELECTION"
	EnvTrace     = "PATHFINDING_TRACE"
	EnvExplain   = "PATHFINDING_EXPLAIN_HOPS"
)

// DefaultExplainHops bounds the reachability walk run when a search finds
// no path.
const DefaultExplainHops = 64

// Scenario kinds.
const (
	KindCircle = "circle"
	KindRandom = "random"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrBadEnv indicates an environment variable that cannot be parsed.
	ErrBadEnv = errors.New("config: bad environment variable")
)

// Config is the full set of settings.
type Config struct {
	Log LogConfig `yaml:"log"`

	// Trace attaches the step logger to every search.
	Trace bool `yaml:"trace"`

	// Selection is "linear" or "heap".
	Selection string `yaml:"selection" validate:"selection"`

	// Seed for random graphs; nil picks a fresh seed per run.
	Seed *int64 `yaml:"seed,omitempty"`

	// ExplainHops caps the hop depth of the walk that explains a missing
	// path. Zero means no cap.
	ExplainHops int `yaml:"explain_hops" validate:"gte=0"`

	// Scenarios run by the demo command, in order.
	Scenarios []Scenario `yaml:"scenarios" validate:"dive"`
}

// LogConfig selects the slog handler. Format "auto" picks text when the
// log destination is a terminal and JSON otherwise.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// Scenario is one graph plus one query.
//
// IDs names the vertex ID scheme: "decimal" (the default), "excel"
// (A, B, ..., Z, AA) or "prefixed" (Prefix followed by the index).
type Scenario struct {
	Name     string `yaml:"name" validate:"required"`
	Kind     string `yaml:"kind" validate:"oneof=circle random"`
	Vertices int    `yaml:"vertices" validate:"gte=0"`
	Edges    int    `yaml:"edges,omitempty" validate:"gte=0"`
	IDs      string `yaml:"ids,omitempty" validate:"omitempty,oneof=decimal excel prefixed"`
	Prefix   string `yaml:"prefix,omitempty" validate:"required_if=IDs prefixed"`
	From     string `yaml:"from" validate:"required"`
	To       string `yaml:"to" validate:"required"`
}

// Default returns the built-in settings: info-level text logs, no tracing,
// linear selection and the two classic demo runs.
func Default() *Config {
	return &Config{
		Log:         LogConfig{Level: "info", Format: "text"},
		Selection:   dijkstra.SelectionLinear.String(),
		ExplainHops: DefaultExplainHops,
		Scenarios: []Scenario{
			{Name: "circle", Kind: KindCircle, Vertices: 20, From: "0", To: "19"},
			{Name: "random", Kind: KindRandom, Vertices: 10, Edges: 30, From: "0", To: "9"},
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode overlays YAML from r onto c. Unknown keys are rejected; an empty
// document changes nothing.
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overlays the PATHFINDING_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvSelection); ok {
		c.Selection = v
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvSeed, v, err)
		}
		c.Seed = &seed
	}
	if v, ok := lookup(EnvExplain); ok {
		hops, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvExplain, v, err)
		}
		c.ExplainHops = hops
	}
	if v, ok := lookup(EnvTrace); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvTrace, v, err)
		}
		c.Trace = on
	}

	return nil
}

// normalize lower-cases the enumerated settings.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Selection = strings.ToLower(strings.TrimSpace(c.Selection))
	for i := range c.Scenarios {
		c.Scenarios[i].Kind = strings.ToLower(strings.TrimSpace(c.Scenarios[i].Kind))
		c.Scenarios[i].IDs = strings.ToLower(strings.TrimSpace(c.Scenarios[i].IDs))
	}
}

// SelectionMode returns the parsed selection strategy.
func (c *Config) SelectionMode() (dijkstra.Selection, error) {
	return dijkstra.ParseSelection(c.Selection)
}

// SlogLevel maps Level to a slog.Level; unknown names map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a slog.Logger writing to w with the configured format
// and level.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" || (l.Format == "auto" && !isTerminal(w)) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
