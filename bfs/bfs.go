// Package bfs provides breadth-first search over an adjacency.List,
// returning the unweighted shortest-path distance between two cells and,
// on request, one shortest path.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/adjacency"
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	list    adjacency.List
	opts    Options
	dest    int
	queue   []int
	visited map[int]bool
	parents map[int]int // nil unless a path is requested

	// level bookkeeping
	queuedAtThisLevel int
	queuedAtNextLevel int
	depth             int
}

// ShortestPath returns the fewest moves from source to destination in list,
// or Unreachable (-1) if destination cannot be reached.
// Returns ErrSameSourceAndDestination, ErrSourceOutOfBounds or
// ErrDestinationOutOfBounds for invalid input, ErrOptionViolation for bad
// options, the context error on cancellation, or any OnVisit hook error.
// The list is never modified; concurrent calls are safe.
func ShortestPath(list adjacency.List, source, destination int, opts ...Option) (int, error) {
	w, err := newWalker(list, source, destination, false, opts)
	if err != nil {
		return Unreachable, err
	}
	found, err := w.loop(source)
	if err != nil || !found {
		return Unreachable, err
	}

	return w.depth, nil
}

// Path returns the cell IDs of one shortest path from source to destination,
// both ends included. Returns ErrNoPath if destination is unreachable,
// and the same validation errors as ShortestPath.
func Path(list adjacency.List, source, destination int, opts ...Option) ([]int, error) {
	w, err := newWalker(list, source, destination, true, opts)
	if err != nil {
		return nil, err
	}
	found, err := w.loop(source)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, destination, source)
	}

	return w.backtrack(source), nil
}

// newWalker validates input in a fixed order and prepares per-call state.
func newWalker(list adjacency.List, source, destination int, trackParents bool, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if source == destination {
		return nil, ErrSameSourceAndDestination
	}
	if !list.Has(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfBounds, source)
	}
	if !list.Has(destination) {
		return nil, fmt.Errorf("%w: %d", ErrDestinationOutOfBounds, destination)
	}

	n := list.Len()
	w := &walker{
		list:    list,
		opts:    o,
		dest:    destination,
		queue:   make([]int, 0, n),
		visited: make(map[int]bool, n),
	}
	if trackParents {
		w.parents = make(map[int]int, n)
	}

	return w, nil
}

// loop drains the queue level by level and reports whether dest was dequeued.
// On success w.depth holds the distance.
func (w *walker) loop(source int) (bool, error) {
	w.enqueue(source, source)
	w.queuedAtThisLevel = 1
	w.queuedAtNextLevel = 0
	w.depth = 0

	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		node := w.dequeue()
		w.queuedAtThisLevel--
		if err := w.opts.OnVisit(node, w.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %d: %w", node, err)
		}
		if node == w.dest {
			return true, nil
		}
		if w.opts.MaxDepth == 0 || w.depth < w.opts.MaxDepth {
			w.enqueueNeighbors(node)
		}

		// level rollover
		if w.queuedAtThisLevel == 0 {
			w.queuedAtThisLevel = w.queuedAtNextLevel
			w.queuedAtNextLevel = 0
			w.depth++
		}
	}

	return false, nil
}

// enqueue marks id visited, records its parent when tracking, and queues it.
func (w *walker) enqueue(id, parent int) {
	w.visited[id] = true
	if w.parents != nil {
		w.parents[id] = parent
	}
	w.queue = append(w.queue, id)
}

// dequeue pops the first queued cell.
func (w *walker) dequeue() int {
	id := w.queue[0]
	w.queue = w.queue[1:]
	return id
}

// enqueueNeighbors queues each unseen neighbor of id on the next level.
// Visited marking happens here, so each cell is queued at most once.
func (w *walker) enqueueNeighbors(id int) {
	for _, nbr := range w.list[id] {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, id)
		w.queuedAtNextLevel++
	}
}

// backtrack follows parent links from dest to source and returns the
// path in source → dest order. The source is its own parent.
func (w *walker) backtrack(source int) []int {
	path := make([]int, 0, w.depth+1)
	for cur := w.dest; ; cur = w.parents[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
