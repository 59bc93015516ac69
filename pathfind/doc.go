// Package pathfind is the entry point for grid path finding: it validates the
// caller's coordinates, builds an adjacency list with package adjacency and
// searches it with package bfs.
//
// What:
//
//   - PathFind / (*PathFinder).PathFind: fewest moves between two cells of a
//     [][]bool grid, or -1 when unreachable.
//   - (*PathFinder).PathFindValues: the same for [][]any rows, as decoded
//     from YAML or JSON; non-bool cells are rejected, never coerced.
//   - (*PathFinder).Route: one shortest route as a slice of Coord.
//   - FindAll: many independent queries solved concurrently.
//
// Errors:
//
//	Every bad input surfaces as *InputError with one of the Msg* sentences.
//	The internal adjacency/bfs sentinel stays reachable with errors.Is.
//	Identical start and end coordinates are rejected with MsgSameStartAndEnd.
//	Unreachability is a result (-1), not an error.
//
// Concurrency:
//
//	PathFind allocates everything per call and keeps no state, so it may be
//	called from any number of goroutines. FindAll builds one PathFinder per
//	query and bounds parallelism with WithConcurrency.
package pathfind
