package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/pathfinding/bfs"
	"github.com/katalvlaran/pathfinding/builder"
	"github.com/katalvlaran/pathfinding/config"
	"github.com/katalvlaran/pathfinding/core"
	"github.com/katalvlaran/pathfinding/dijkstra"
	"github.com/katalvlaran/pathfinding/render"
	"github.com/katalvlaran/pathfinding/trace"
)

// run builds the scenario graph, prints it and prints the path found.
//
// Output, one item per line:
//
//	edges : [...]
//	digraph g{ ... }      with --dot
//	initial : / visiting  with --trace
//	a -> b -> c           or "no path found!"
func (a *app) run(ctx context.Context, w io.Writer, s config.Scenario) error {
	log := a.log.With(slog.String("scenario", s.Name))

	ids, err := builder.NamedIDs(s.IDs, s.Prefix)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	s = withEndpoints(s, ids)

	g, err := a.buildGraph(log, s, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	log.Info("graph built",
		slog.String("kind", s.Kind),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	if _, err := fmt.Fprintln(w, render.Graph(g)); err != nil {
		return err
	}
	if a.dot {
		if err := render.WriteDOT(w, g); err != nil {
			return err
		}
	}

	opts, console, err := a.searchOptions(w, log)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := dijkstra.FindPath(g, core.NewVertex(s.From), core.NewVertex(s.To), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	if console != nil && console.Err() != nil {
		return console.Err()
	}

	attrs := []slog.Attr{
		slog.String("from", s.From),
		slog.String("to", s.To),
		slog.Bool("found", res.Found()),
		slog.Duration("elapsed", time.Since(start)),
	}
	if res.Found() {
		attrs = append(attrs, slog.Float64("cost", res.Cost), slog.Int("hops", len(res.Path)-1))
	} else {
		attrs = append(attrs, explainMissing(ctx, g, s, a.cfg.ExplainHops)...)
	}
	log.LogAttrs(ctx, slog.LevelInfo, "search finished", attrs...)

	_, err = fmt.Fprintln(w, res)

	return err
}

// withEndpoints fills an empty source with the first vertex ID of the
// scheme and an empty target with the last.
func withEndpoints(s config.Scenario, ids builder.IDFn) config.Scenario {
	if s.Vertices < 1 {
		return s
	}
	if s.From == "" {
		s.From = ids(0)
	}
	if s.To == "" {
		s.To = ids(s.Vertices - 1)
	}

	return s
}

// explainMissing tells why no path was found. A hop-capped walk from the
// source separates a missing source, a target reachable only through
// infinite-cost edges, a target beyond maxHops and a target out of reach;
// the last two also report the path to the farthest vertex walked.
func explainMissing(ctx context.Context, g *core.Graph, s config.Scenario, maxHops int) []slog.Attr {
	if s.From == s.To {
		return []slog.Attr{slog.String("reason", "source is target")}
	}

	var (
		farthest core.Vertex
		deepest  = -1
	)
	tree, err := bfs.BFS(g, s.From,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(maxHops),
		bfs.WithOnVisit(func(v core.Vertex, hops int) error {
			if hops > deepest {
				farthest, deepest = v, hops
			}
			return nil
		}),
	)
	if err != nil {
		return []slog.Attr{slog.String("reason", err.Error())}
	}

	if tree.Reached(s.To) {
		path, _ := tree.PathTo(s.To)
		return []slog.Attr{
			slog.String("reason", "target behind infinite-cost edges"),
			slog.String("via", hopPath(path)),
		}
	}

	reason := "target unreachable"
	if maxHops > 0 && deepest == maxHops {
		reason = "target not within hop limit"
	}
	path, _ := tree.PathTo(farthest.ID)

	return []slog.Attr{
		slog.String("reason", reason),
		slog.Int("reachable", len(tree.Order)),
		slog.String("farthest", hopPath(path)),
	}
}

// hopPath renders vertex IDs joined by " -> ".
func hopPath(path []core.Vertex) string {
	var b strings.Builder
	for i, v := range path {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(v.ID)
	}

	return b.String()
}

// buildGraph generates the scenario graph with the given ID scheme. Random
// graphs use the configured seed, or a fresh one that is logged so the run
// can be repeated.
func (a *app) buildGraph(log *slog.Logger, s config.Scenario, ids builder.IDFn) (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithIDScheme(ids)}
	switch s.Kind {
	case config.KindCircle:
		return builder.BuildGraph(bopts, builder.Circle(s.Vertices))
	case config.KindRandom:
		var seed int64
		if a.cfg.Seed != nil {
			seed = *a.cfg.Seed
		} else {
			seed = time.Now().UnixNano()
		}
		log.Info("random seed", slog.Int64("seed", seed))
		return builder.BuildGraph(
			append(bopts, builder.WithSeed(seed)),
			builder.Random(s.Vertices, s.Edges),
		)
	default:
		return nil, fmt.Errorf("unknown scenario kind %q: %w", s.Kind, config.ErrInvalidConfig)
	}
}

// searchOptions turns the settings into dijkstra options. The returned
// Console is non-nil when tracing to w.
func (a *app) searchOptions(w io.Writer, log *slog.Logger) ([]dijkstra.Option, *trace.Console, error) {
	sel, err := a.cfg.SelectionMode()
	if err != nil {
		return nil, nil, err
	}
	opts := []dijkstra.Option{dijkstra.WithSelection(sel)}

	var (
		observers []dijkstra.Observer
		console   *trace.Console
	)
	if a.cfg.Trace {
		console = trace.NewConsole(w)
		observers = append(observers, console)
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		observers = append(observers, trace.NewLogger(log))
	}
	if len(observers) > 0 {
		opts = append(opts, dijkstra.WithObserver(trace.Multi(observers...)))
	}

	return opts, console, nil
}
