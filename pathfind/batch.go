package pathfind

import (
	"context"
	"errors"
	"runtime"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/internal/logx"
	"golang.org/x/sync/errgroup"
)

// Query is one independent path-finding request for FindAll.
// Values, when non-nil, takes precedence over Grid.
type Query struct {
	Name       string
	Grid       [][]bool
	Values     [][]any
	Start, End Coord
}

// Result is the outcome of one Query. Err holds the query's *InputError,
// if any; Distance is then -1.
type Result struct {
	Name     string
	Distance int
	Err      error
}

// BatchOption configures FindAll.
type BatchOption func(*batchConfig)

type batchConfig struct {
	concurrency int
	finderOpts  []Option
}

// WithConcurrency bounds the number of queries solved at once.
// Values below 1 keep the default of runtime.GOMAXPROCS(0).
func WithConcurrency(n int) BatchOption {
	return func(c *batchConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithFinderOptions applies opts to the PathFinder built for every query.
func WithFinderOptions(opts ...Option) BatchOption {
	return func(c *batchConfig) {
		c.finderOpts = append(c.finderOpts, opts...)
	}
}

// FindAll solves queries concurrently and returns results in query order.
// Each query gets its own PathFinder. Invalid input is recorded per query
// and does not stop the batch; cancellation of ctx does, returning ctx's error.
func FindAll(ctx context.Context, queries []Query, opts ...BatchOption) ([]Result, error) {
	cfg := batchConfig{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	results := make([]Result, len(queries))

	for i := range queries {
		i := i
		q := queries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			finderOpts := append([]Option{WithSearchOptions(bfs.WithContext(gctx))}, cfg.finderOpts...)
			pf := New(finderOpts...)

			var (
				moves int
				err   error
			)
			if q.Values != nil {
				moves, err = pf.PathFindValues(q.Values, q.Start, q.End)
			} else {
				moves, err = pf.PathFind(q.Grid, q.Start, q.End)
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logx.Log.Debugf("query %d %q: moves=%d err=%v", i, q.Name, moves, err)
			results[i] = Result{Name: q.Name, Distance: moves, Err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
