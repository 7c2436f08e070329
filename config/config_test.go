package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinding/dijkstra"
)

// writeFile writes body to a temporary YAML file and returns its path.
func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathfinding.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// envMap adapts a map to the lookup signature of applyEnv.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Trace)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, DefaultExplainHops, cfg.ExplainHops)
	require.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, Scenario{Name: "circle", Kind: KindCircle, Vertices: 20, From: "0", To: "19"}, cfg.Scenarios[0])
	assert.Equal(t, Scenario{Name: "random", Kind: KindRandom, Vertices: 10, Edges: 30, From: "0", To: "9"}, cfg.Scenarios[1])

	sel, err := cfg.SelectionMode()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.SelectionLinear, sel)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Scenarios, 2)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: DEBUG
trace: true
selection: heap
seed: 7
scenarios:
  - name: ring
    kind: circle
    vertices: 5
    ids: Excel
    from: A
    to: E
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their defaults")
	assert.True(t, cfg.Trace)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
	require.Len(t, cfg.Scenarios, 1, "a scenario list replaces the defaults")
	assert.Equal(t, "ring", cfg.Scenarios[0].Name)
	assert.Equal(t, "excel", cfg.Scenarios[0].IDs, "scheme names are lower-cased")

	sel, err := cfg.SelectionMode()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.SelectionHeap, sel)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "colour: blue\n"))
	require.Error(t, err, "unknown keys are rejected")
	assert.Contains(t, err.Error(), "colour")

	_, err = Load(writeFile(t, "selection: fibonacci\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvSelection, "heap")
	t.Setenv(EnvTrace, "true")
	t.Setenv(EnvExplain, " 0 ")

	cfg, err := Load(writeFile(t, "log:\n  level: debug\nseed: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level, "environment wins over the file")
	assert.Equal(t, "json", cfg.Log.Format)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, "heap", cfg.Selection)
	assert.True(t, cfg.Trace)
	assert.Zero(t, cfg.ExplainHops)
}

func TestApplyEnv_Bad(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvTrace, EnvExplain} {
		cfg := Default()
		err := cfg.applyEnv(envMap(map[string]string{key: "nope"}))
		assert.ErrorIs(t, err, ErrBadEnv, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string // the failing field, empty when valid
	}{
		{"defaults", func(c *Config) {}, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "Level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "Format"},
		{"auto format", func(c *Config) { c.Log.Format = "auto" }, ""},
		{"bad selection", func(c *Config) { c.Selection = "random" }, "Selection"},
		{"unnamed scenario", func(c *Config) { c.Scenarios[0].Name = "" }, "Name"},
		{"bad kind", func(c *Config) { c.Scenarios[0].Kind = "star" }, "Kind"},
		{"missing target", func(c *Config) { c.Scenarios[1].To = "" }, "To"},
		{"empty circle", func(c *Config) { c.Scenarios[0].Vertices = 0 }, "Vertices"},
		{"circle with edges", func(c *Config) { c.Scenarios[0].Edges = 3 }, "Edges"},
		{"too many random edges", func(c *Config) { c.Scenarios[1].Edges = 101 }, "Edges"},
		{"every random pair", func(c *Config) { c.Scenarios[1].Edges = 100 }, ""},
		{"excel ids", func(c *Config) { c.Scenarios[0].IDs = "excel" }, ""},
		{"bad ids", func(c *Config) { c.Scenarios[0].IDs = "roman" }, "IDs"},
		{"prefixed ids", func(c *Config) { c.Scenarios[0].IDs, c.Scenarios[0].Prefix = "prefixed", "v" }, ""},
		{"prefixed ids without prefix", func(c *Config) { c.Scenarios[0].IDs = "prefixed" }, "Prefix"},
		{"negative explain hops", func(c *Config) { c.ExplainHops = -1 }, "ExplainHops"},
		{"negative vertices", func(c *Config) { c.Scenarios[1].Vertices = -1 }, "Vertices"},
		{"no scenarios", func(c *Config) { c.Scenarios = nil }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fe.StructField()
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())

	LogConfig{Level: "debug", Format: "json"}.NewLogger(&buf).Debug("shown", "k", 1)
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	LogConfig{Level: "info", Format: "text"}.NewLogger(&buf).Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")

	// A buffer is not a terminal, so auto means JSON.
	buf.Reset()
	LogConfig{Level: "info", Format: "auto"}.NewLogger(&buf).Info("shown")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())

	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "?"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
}

func TestLoad_Sample(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pathfinding.yaml"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(2015), *cfg.Seed)
	assert.Equal(t, Default().Scenarios, cfg.Scenarios)
}

func TestValidator_SelectionRule(t *testing.T) {
	assert.NotPanics(t, func() { newValidator() })
	// A bad tag is reported by the registration call, never dropped.
	require.Error(t, validator.New().RegisterValidation("", validateSelection))

	cfg := Default()
	cfg.Selection = "fibonacci"
	err := cfg.Validate()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, selectionTag, verrs[0].Tag(), "the custom rule, not a built-in one, rejected the value")
}
