// Package pathfind finds the fewest 4-directional moves between two cells
// of a boolean grid.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/bfs"
)

// Coord addresses a grid cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// GraphBuilder converts a grid into an adjacency list.
type GraphBuilder interface {
	FromGrid(grid [][]bool) (adjacency.List, error)
	FromValues(rows [][]any) (adjacency.List, error)
}

// Searcher computes the move count between two cells of an adjacency list,
// or bfs.Unreachable.
type Searcher interface {
	ShortestPath(list adjacency.List, source, destination int) (int, error)
}

// PathFinder validates coordinates, builds the graph and runs the search.
// It holds no per-query state; one PathFinder may serve concurrent calls
// as long as its GraphBuilder and Searcher do.
type PathFinder struct {
	builder    GraphBuilder
	searcher   Searcher
	searchOpts []bfs.Option
}

// Option configures a PathFinder.
type Option func(*PathFinder)

// WithGraphBuilder replaces the default adjacency builder.
func WithGraphBuilder(b GraphBuilder) Option {
	return func(pf *PathFinder) {
		if b != nil {
			pf.builder = b
		}
	}
}

// WithSearcher replaces the default BFS searcher.
func WithSearcher(s Searcher) Option {
	return func(pf *PathFinder) {
		if s != nil {
			pf.searcher = s
		}
	}
}

// WithSearchOptions passes bfs options (context, depth limit, hooks) to the
// default searcher and to Route.
func WithSearchOptions(opts ...bfs.Option) Option {
	return func(pf *PathFinder) {
		pf.searchOpts = append(pf.searchOpts, opts...)
	}
}

// New returns a PathFinder backed by the adjacency and bfs packages unless
// overridden by opts.
func New(opts ...Option) *PathFinder {
	pf := &PathFinder{builder: defaultBuilder{}}
	for _, opt := range opts {
		opt(pf)
	}
	if pf.searcher == nil {
		pf.searcher = defaultSearcher{opts: pf.searchOpts}
	}

	return pf
}

// PathFind returns the fewest moves from start to end on grid, or -1 if end
// cannot be reached. Every invalid input yields an *InputError.
// It builds a fresh PathFinder per call and keeps no state between calls.
func PathFind(grid [][]bool, start, end Coord) (int, error) {
	return New().PathFind(grid, start, end)
}

// PathFind returns the fewest moves from start to end on grid, or -1 if end
// cannot be reached.
//
// Checks run in this order: start in bounds and traversable, end in bounds
// and traversable, start != end, then grid shape while building the graph.
func (pf *PathFinder) PathFind(grid [][]bool, start, end Coord) (int, error) {
	_, src, dst, err := locate(grid, start, end, func(v bool) bool { return v })
	if err != nil {
		return bfs.Unreachable, err
	}
	list, err := pf.builder.FromGrid(grid)
	if err != nil {
		return bfs.Unreachable, translate(err)
	}

	return pf.search(list, src, dst)
}

// PathFindValues is PathFind for loosely-typed rows, such as grids decoded
// from YAML or JSON. A non-bool cell yields the boolean-type InputError.
func (pf *PathFinder) PathFindValues(rows [][]any, start, end Coord) (int, error) {
	_, src, dst, err := locate(rows, start, end, isTrue)
	if err != nil {
		return bfs.Unreachable, err
	}
	list, err := pf.builder.FromValues(rows)
	if err != nil {
		return bfs.Unreachable, translate(err)
	}

	return pf.search(list, src, dst)
}

// Route returns one shortest route from start to end, both included, or nil
// when end cannot be reached. Input is validated exactly as in PathFind.
// Route always uses the bfs package, ignoring any custom Searcher.
func (pf *PathFinder) Route(grid [][]bool, start, end Coord) ([]Coord, error) {
	width, src, dst, err := locate(grid, start, end, func(v bool) bool { return v })
	if err != nil {
		return nil, err
	}
	list, err := pf.builder.FromGrid(grid)
	if err != nil {
		return nil, translate(err)
	}
	ids, err := bfs.Path(list, src, dst, pf.searchOpts...)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}

	route := make([]Coord, len(ids))
	for i, id := range ids {
		route[i].Row, route[i].Col = adjacency.Coordinate(id, width)
	}

	return route, nil
}

func (pf *PathFinder) search(list adjacency.List, src, dst int) (int, error) {
	moves, err := pf.searcher.ShortestPath(list, src, dst)
	if err != nil {
		return bfs.Unreachable, translate(err)
	}

	return moves, nil
}

// locate validates both coordinates against rows and returns the grid width
// (taken from the first row) and the cell IDs of start and end.
func locate[T any](rows [][]T, start, end Coord, traversable func(T) bool) (width, src, dst int, err error) {
	if !validCoord(rows, start, traversable) {
		return 0, 0, 0, inputError(MsgInvalidStart, nil)
	}
	if !validCoord(rows, end, traversable) {
		return 0, 0, 0, inputError(MsgInvalidEnd, nil)
	}
	if start == end {
		return 0, 0, 0, inputError(MsgSameStartAndEnd, bfs.ErrSameSourceAndDestination)
	}
	width = len(rows[0])

	return width, adjacency.CellID(start.Row, start.Col, width), adjacency.CellID(end.Row, end.Col, width), nil
}

// validCoord reports whether c exists in rows and marks a traversable cell.
func validCoord[T any](rows [][]T, c Coord, traversable func(T) bool) bool {
	if c.Row < 0 || c.Row >= len(rows) {
		return false
	}
	if c.Col < 0 || c.Col >= len(rows[c.Row]) {
		return false
	}

	return traversable(rows[c.Row][c.Col])
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

type defaultBuilder struct{}

func (defaultBuilder) FromGrid(grid [][]bool) (adjacency.List, error) {
	return adjacency.FromGrid(grid)
}

func (defaultBuilder) FromValues(rows [][]any) (adjacency.List, error) {
	return adjacency.FromValues(rows)
}

type defaultSearcher struct {
	opts []bfs.Option
}

func (s defaultSearcher) ShortestPath(list adjacency.List, source, destination int) (int, error) {
	return bfs.ShortestPath(list, source, destination, s.opts...)
}
