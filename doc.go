// Package gridpath counts the fewest moves between two cells of a grid.
//
// A grid is a rectangle of open (true) and blocked (false) tiles. A move
// steps up, down, left or right onto an open tile; diagonal moves are not
// allowed. The answer is the number of moves on a shortest route, or -1
// when the end cannot be reached.
//
// The work is split across small subpackages:
//
//	adjacency/   turns a grid into a cell-id adjacency list
//	bfs/         level-synchronised breadth-first search over that list
//	pathfind/    input validation, the PathFinder facade and batch solving
//	gridmap/     "P . # Q" text maps and YAML scenario files
//	cmd/         the gridpath command-line tool
//
// Quick example:
//
//	. P . . .
//	. # # # .       P to Q takes 6 moves:
//	. . . . .       the wall in row 1 forces a detour
//	. . Q . .       around its left end.
//	. . . . .
//
//	moves, err := pathfind.PathFind(grid, pathfind.Coord{0, 1}, pathfind.Coord{3, 2})
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
