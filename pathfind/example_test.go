package pathfind_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/pathfind"
)

// ExamplePathFind solves the reference 5×5 map.
//
//	. P . . .
//	. # # # .
//	. . . . .
//	. . Q . .
//	. . . . .
func ExamplePathFind() {
	grid := [][]bool{
		{true, true, true, true, true},
		{true, false, false, false, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
	}

	moves, err := pathfind.PathFind(grid, pathfind.Coord{Row: 0, Col: 1}, pathfind.Coord{Row: 3, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if moves == -1 {
		fmt.Println("Unable to find a path")
		return
	}
	fmt.Printf("Shortest path is %d moves.\n", moves)
	// Output:
	// Shortest path is 6 moves.
}

// ExamplePathFind_inputError shows the single external error kind.
func ExamplePathFind_inputError() {
	grid := [][]bool{{true, false, true, false, true}}

	_, err := pathfind.PathFind(grid, pathfind.Coord{Row: 0, Col: 0}, pathfind.Coord{Row: 0, Col: 2})
	var ie *pathfind.InputError
	if errors.As(err, &ie) {
		fmt.Println(ie.Message)
	}
	// Output:
	// The first argument must be a two dimensional grid, at least 2x2 in size.
}

// ExamplePathFinder_Route lists the cells of one shortest route.
func ExamplePathFinder_Route() {
	grid := [][]bool{
		{true, true, true},
		{false, false, true},
		{true, true, true},
	}
	route, err := pathfind.New().Route(grid, pathfind.Coord{Row: 0, Col: 0}, pathfind.Coord{Row: 2, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route)
	// Output:
	// [{0 0} {0 1} {0 2} {1 2} {2 2} {2 1} {2 0}]
}
