// Package bfs provides breadth-first search over an adjacency.List,
// returning the unweighted shortest-path distance between two cells.
//
// What
//
//   - ShortestPath: the number of moves on a shortest path, or Unreachable (-1).
//   - Path: the cell IDs of one shortest path, source and destination included.
//   - Supports functional options:
//   - WithContext  (cancellation, checked once per dequeue)
//   - WithOnVisit  (hook on dequeue; may abort with an error)
//   - WithMaxDepth (stop expanding past a depth)
//
// Why
//
//   - BFS dequeues cells in non-decreasing distance from the source, so the
//     depth at which the destination is dequeued is its exact distance.
//   - O(V + E) time, O(V) memory.
//
// How
//
//	The search is level-synchronised: a counter of cells left on the current
//	level and a counter of cells queued for the next level. When the current
//	level drains, the next level becomes current and the depth increments.
//	Cells are marked visited when queued, never when dequeued, so each cell
//	enters the queue at most once.
//
// Determinism
//
//	Neighbors are expanded in adjacency.List order (up, down, left, right for
//	grid-built lists), so Path is reproducible for a given list.
//
// Concurrency
//
//	All state is allocated per call. Nothing is shared between calls and the
//	input list is never written, so independent goroutines may search the
//	same list at once.
//
// Errors
//
//   - ErrSameSourceAndDestination, ErrSourceOutOfBounds, ErrDestinationOutOfBounds
//     are checked in that order before any search work.
//   - ErrNoPath (Path only) when the destination is unreachable.
//   - ErrOptionViolation for a negative MaxDepth.
package bfs
