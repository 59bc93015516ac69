package adjacency

import (
	"errors"
	"sort"
)

// Sentinel errors for grid validation.
var (
	// ErrGridTooSmall indicates the grid has fewer than MinHeight rows
	// or its first row has fewer than MinWidth columns.
	ErrGridTooSmall = errors.New("adjacency: grid must be at least 2x2")
	// ErrInconsistentRowWidth indicates a row whose length differs from the first row.
	ErrInconsistentRowWidth = errors.New("adjacency: all rows must have the same width")
	// ErrInvalidCellType indicates a cell value that is not a bool.
	ErrInvalidCellType = errors.New("adjacency: grid cells must be boolean")
)

const (
	// MinHeight is the minimum number of rows accepted.
	MinHeight = 2
	// MinWidth is the minimum number of columns accepted.
	MinWidth = 2
)

// relativeOffsets lists (row, col) deltas in neighbor emission order:
// up, down, left, right.
var relativeOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// List maps a cell ID to the IDs of its reachable neighbors.
// It is immutable once returned by FromGrid or FromValues.
type List map[int][]int

// Len returns the number of cells in the list.
func (l List) Len() int {
	return len(l)
}

// Has reports whether id is a cell of the list.
func (l List) Has(id int) bool {
	_, ok := l[id]
	return ok
}

// Neighbors returns the neighbor IDs of id and whether id exists.
// The returned slice must not be modified.
func (l List) Neighbors(id int) ([]int, bool) {
	nbrs, ok := l[id]
	return nbrs, ok
}

// IDs returns all cell IDs in ascending order.
func (l List) IDs() []int {
	ids := make([]int, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// cell is one flattened grid position.
type cell struct {
	row, col    int
	traversable bool
}

// CellID maps (row, col) to a row-major index: row*width + col.
// Complexity: O(1).
func CellID(row, col, width int) int {
	return row*width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func Coordinate(id, width int) (row, col int) {
	return id / width, id % width
}
