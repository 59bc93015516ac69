// Package bfs provides tunable options and error definitions
// for breadth-first search over an adjacency.List.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable is returned by ShortestPath when no path exists.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrSameSourceAndDestination is returned when source equals destination.
	ErrSameSourceAndDestination = errors.New("bfs: source and destination must not be the same")

	// ErrSourceOutOfBounds is returned when the source is not a cell of the list.
	ErrSourceOutOfBounds = errors.New("bfs: source must be a valid grid location")

	// ErrDestinationOutOfBounds is returned when the destination is not a cell of the list.
	ErrDestinationOutOfBounds = errors.New("bfs: destination must be a valid grid location")

	// ErrNoPath is returned by Path when the destination cannot be reached.
	ErrNoPath = errors.New("bfs: no path to destination")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued, with its depth from the
	// source. If it returns an error, the search aborts and propagates it.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops expanding cells at this depth, so a
	// destination further away is reported as unreachable.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits how far from the source the search expands.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
