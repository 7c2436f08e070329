// Package pathfinding is a small, dependable playground for cheapest-path
// search on directed graphs: build a graph, ask for a path, watch every step
// of Dijkstra's algorithm as it settles vertices.
//
// 🚀 What is in the box?
//
//	• core/     – Vertex, Edge and the thread-safe, edge-list Graph
//	• builder/  – deterministic generators: Circle, Path, Complete, Random
//	• dijkstra/ – FindPath / ShortestPaths with linear-scan or heap selection
//	• trace/    – observers: slog logger, console step log, recorder, fan-out
//	• render/   – text listing and Graphviz DOT output
//	• config/   – defaults, YAML file and PATHFINDING_* environment settings
//	• cmd/pathfinding – the command-line front end (circle, random, demo)
//
// ✨ Guarantees
//
//   - Deterministic: vertices are ordered by first appearance, ties go to
//     the leftmost vertex and equal-cost alternatives never replace an
//     existing predecessor.
//   - Reproducible: random graphs are seeded explicitly.
//   - Observable: the search reports its distance table after every step
//     through an Observer instead of printing.
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Circle(20))
//	res, _ := dijkstra.FindPath(g, core.IntVertex(0), core.IntVertex(19))
//	fmt.Println(res) // 0 -> 1 -> … -> 19
package pathfinding
