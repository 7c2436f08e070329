// Package dijkstra defines core types and configuration options
// for the single-target shortest-path search on core.Graph.
//
// Options:
//
//	– Observer:  receives the full distance table once after initialization
//	             and again after every visited vertex.
//	– Selection: how the next vertex to settle is chosen (linear scan or heap).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrUnknownSelection if a selection name cannot be parsed.
package dijkstra

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinding/core"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownSelection indicates an unrecognised selection strategy name.
	ErrUnknownSelection = errors.New("dijkstra: unknown selection strategy")
)

// Selection controls how the next unsettled vertex is chosen.
//
// SelectionLinear – scan every unsettled vertex, pick the leftmost minimum in
//
//	first-seen vertex order. O(V²). Unreachable vertices are visited too,
//	with distance +Inf.
//
// SelectionHeap   – min-heap ordered by (distance, first-seen index) with lazy
//
//	decrease-key. O((V+E) log V). Produces the same distances and
//	predecessors; unreachable vertices are never visited.
type Selection int

const (
	// SelectionLinear is the default O(V²) scan.
	SelectionLinear Selection = iota

	// SelectionHeap uses a binary heap with the same tie-break.
	SelectionHeap
)

// String returns the lowercase name accepted by ParseSelection.
func (s Selection) String() string {
	switch s {
	case SelectionLinear:
		return "linear"
	case SelectionHeap:
		return "heap"
	default:
		return "Selection(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseSelection maps "linear" or "heap" (case-insensitive) to a Selection.
func ParseSelection(name string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return SelectionLinear, nil
	case "heap":
		return SelectionHeap, nil
	default:
		return SelectionLinear, fmt.Errorf("%w: %q", ErrUnknownSelection, name)
	}
}

// Distance is one row of a distance table.
type Distance struct {
	Vertex core.Vertex
	Value  float64 // +Inf when not reached (yet)
}

// Distances is a snapshot of the distance table in first-seen vertex order.
// Snapshots handed to an Observer are owned by the Observer.
type Distances []Distance

// Get returns the distance recorded for id.
func (d Distances) Get(id string) (float64, bool) {
	for _, row := range d {
		if row.Vertex.ID == id {
			return row.Value, true
		}
	}

	return 0, false
}

// String renders the table as {"id":value,...} with +Inf for unreached rows.
func (d Distances) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, row := range d {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(row.Vertex.ID))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(row.Value, 'g', -1, 64))
	}
	sb.WriteByte('}')

	return sb.String()
}

// MarshalJSON encodes the table as a JSON object keyed by vertex ID, keeping
// row order. Unreached rows encode as null since JSON has no infinity.
func (d Distances) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, row := range d {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(row.Vertex.ID)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		if math.IsInf(row.Value, 0) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, row.Value, 'g', -1, 64)
		}
	}
	buf = append(buf, '}')

	return buf, nil
}

// Observer receives the intermediate state of a search.
//
// Initialized is called once, after every vertex got +Inf and the source 0.
// Visited is called after each settled vertex had its outgoing edges relaxed.
// Both run synchronously on the searching goroutine.
type Observer interface {
	Initialized(d Distances)
	Visited(current core.Vertex, d Distances)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnInit  func(d Distances)
	OnVisit func(current core.Vertex, d Distances)
}

// Initialized calls OnInit if set.
func (f ObserverFuncs) Initialized(d Distances) {
	if f.OnInit != nil {
		f.OnInit(d)
	}
}

// Visited calls OnVisit if set.
func (f ObserverFuncs) Visited(current core.Vertex, d Distances) {
	if f.OnVisit != nil {
		f.OnVisit(current, d)
	}
}

// Options configures a search.
//
// Observer  – optional sink for intermediate distance tables (nil = none).
// Selection – next-vertex strategy, SelectionLinear by default.
type Options struct {
	Observer  Observer
	Selection Selection
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithObserver attaches an Observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("dijkstra: WithObserver(nil)")
	}
	return func(opts *Options) {
		opts.Observer = o
	}
}

// WithSelection picks the next-vertex strategy. Panics on an unknown value.
func WithSelection(s Selection) Option {
	if s != SelectionLinear && s != SelectionHeap {
		panic(fmt.Sprintf("dijkstra: WithSelection(%d)", int(s)))
	}
	return func(opts *Options) {
		opts.Selection = s
	}
}

// DefaultOptions returns the defaults: no observer, linear selection.
func DefaultOptions() Options {
	return Options{
		Observer:  nil,
		Selection: SelectionLinear,
	}
}
