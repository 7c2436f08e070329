// Package trace provides dijkstra.Observer implementations that record or
// report the intermediate distance tables of a search.
//
//   - Logger:   one slog record per step ("initial", then "visiting").
//   - Console:  the plain-text step log ("initial :", "visiting : v", each
//     followed by the table as JSON).
//   - Recorder: keeps every snapshot in memory, for tests and tooling.
//   - Multi:    fans one search out to several observers.
//
// All observers run on the searching goroutine; Recorder is additionally
// safe to read from other goroutines.
package trace
