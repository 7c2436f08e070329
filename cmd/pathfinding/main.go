// Command pathfinding builds demo graphs and prints the cheapest path
// between two of their vertices.
//
// Usage:
//
//	pathfinding circle --vertices 20 --from 0 --to 19
//	pathfinding circle --vertices 5 --ids excel --from B
//	pathfinding random --vertices 10 --edges 30 --seed 7 --from 0 --to 9
//	pathfinding demo --config pathfinding.yaml --trace --dot
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
