package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathfinding/builder"
	"github.com/katalvlaran/pathfinding/config"
)

func newCircleCmd(a *app) *cobra.Command {
	var (
		vertices int
		q        query
	)
	cmd := &cobra.Command{
		Use:   "circle",
		Short: "Search a directed circle 0→1→…→n-1→0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := q.scenario(config.Scenario{
				Name:     "circle",
				Kind:     config.KindCircle,
				Vertices: vertices,
			})
			return a.run(cmd.Context(), cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().IntVarP(&vertices, "vertices", "n", 20, "number of vertices")
	q.bind(cmd.Flags())

	return cmd
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		vertices, edges int
		seed            int64
		q               query
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Search a random directed graph with distinct edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed = &seed
			}
			s := q.scenario(config.Scenario{
				Name:     "random",
				Kind:     config.KindRandom,
				Vertices: vertices,
				Edges:    edges,
			})
			return a.run(cmd.Context(), cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().IntVarP(&vertices, "vertices", "n", 10, "number of vertices")
	cmd.Flags().IntVarP(&edges, "edges", "m", 30, "number of distinct edges")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: from config, else fresh)")
	q.bind(cmd.Flags())

	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every configured scenario in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range a.cfg.Scenarios {
				if err := a.run(cmd.Context(), cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// query holds the flags shared by the generator commands: the vertex ID
// scheme and the endpoints. Empty endpoints default to the first and last
// vertex of the scheme.
type query struct {
	ids, prefix string
	from, to    string
}

func (q *query) bind(fs *pflag.FlagSet) {
	fs.StringVar(&q.ids, "ids", "decimal", "vertex ID scheme: decimal, excel or prefixed")
	fs.StringVar(&q.prefix, "prefix", "v", "ID prefix for --ids prefixed")
	fs.StringVar(&q.from, "from", "", "source vertex ID (default: the first vertex)")
	fs.StringVar(&q.to, "to", "", "target vertex ID (default: the last vertex)")
}

// scenario completes s with the query flags.
func (q *query) scenario(s config.Scenario) config.Scenario {
	s.IDs = strings.ToLower(q.ids)
	if s.IDs == builder.IDsPrefixed {
		s.Prefix = q.prefix
	}
	s.From, s.To = q.from, q.to

	return s
}
