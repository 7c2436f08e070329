package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinding/config"
)

// app carries the flag values and the resolved settings shared by all
// subcommands.
type app struct {
	configPath string
	logLevel   string
	selection  string
	trace      bool
	dot        bool
	explain    int

	cfg *config.Config
	log *slog.Logger
}

// newRootCmd assembles the command tree writing results to stdout and logs
// and errors to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pathfinding",
		Short: "Find cheapest paths in generated directed graphs",
		Long: `pathfinding generates a circular or random directed graph, prints it and
runs Dijkstra's search between two of its vertices.

Settings come from built-in defaults, an optional YAML file (--config) and
PATHFINDING_* environment variables; flags override all of them.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML settings file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.selection, "selection", "", "next-vertex strategy: linear or heap")
	pf.BoolVar(&a.trace, "trace", false, "print the distance table after every step")
	pf.BoolVar(&a.dot, "dot", false, "also print each graph as Graphviz DOT")
	pf.IntVar(&a.explain, "explain-hops", config.DefaultExplainHops, "hop cap of the walk explaining a missing path, 0 for none")

	root.AddCommand(
		newCircleCmd(a),
		newRandomCmd(a),
		newDemoCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if flags.Changed("selection") {
		cfg.Selection = strings.ToLower(a.selection)
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if flags.Changed("explain-hops") {
		cfg.ExplainHops = a.explain
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	a.cfg = cfg
	a.log = cfg.Log.NewLogger(cmd.ErrOrStderr()).With(slog.String("run_id", uuid.NewString()))
	a.log.Debug("configuration loaded",
		slog.String("file", a.configPath),
		slog.String("selection", cfg.Selection),
		slog.Bool("trace", cfg.Trace),
		slog.Int("scenarios", len(cfg.Scenarios)),
	)

	return nil
}
