package adjacency

import "fmt"

// FromGrid builds the adjacency list of a boolean grid, where true marks
// a traversable cell.
// Returns ErrGridTooSmall or ErrInconsistentRowWidth for malformed grids.
// Algorithmic complexity: O(W×H) time and memory.
func FromGrid(grid [][]bool) (List, error) {
	return build(grid, func(v bool) (bool, bool) { return v, true })
}

// FromValues builds the adjacency list of a loosely-typed grid, such as rows
// decoded from YAML or JSON. Every cell must hold a Go bool; strings and
// numbers are rejected with ErrInvalidCellType rather than coerced.
func FromValues(rows [][]any) (List, error) {
	return build(rows, func(v any) (bool, bool) {
		b, ok := v.(bool)
		return b, ok
	})
}

// build validates rows and emits the adjacency list.
// asBool reports the traversable flag of a cell and whether the cell is a bool.
func build[T any](rows [][]T, asBool func(T) (bool, bool)) (List, error) {
	height, width, err := dimensions(rows)
	if err != nil {
		return nil, err
	}
	cells, err := flatten(rows, height, width, asBool)
	if err != nil {
		return nil, err
	}

	list := make(List, len(cells))
	for id, c := range cells {
		// Blocked cells stay in the list but never get neighbors.
		if !c.traversable {
			list[id] = []int{}
			continue
		}
		nbrs := make([]int, 0, len(relativeOffsets))
		for _, d := range relativeOffsets {
			r, cl := c.row+d[0], c.col+d[1]
			if r < 0 || cl < 0 || r >= height || cl >= width {
				continue
			}
			nid := CellID(r, cl, width)
			if !cells[nid].traversable {
				continue
			}
			nbrs = append(nbrs, nid)
		}
		list[id] = nbrs
	}

	return list, nil
}

// dimensions returns the row count and the width of the first row.
func dimensions[T any](rows [][]T) (height, width int, err error) {
	if len(rows) < MinHeight || len(rows[0]) < MinWidth {
		return 0, 0, fmt.Errorf("%w: got %d rows", ErrGridTooSmall, len(rows))
	}

	return len(rows), len(rows[0]), nil
}

// flatten walks rows top-to-bottom, left-to-right, checking width and type
// as it goes, and returns the cells in ID order.
func flatten[T any](rows [][]T, height, width int, asBool func(T) (bool, bool)) ([]cell, error) {
	cells := make([]cell, 0, height*width)
	for r := 0; r < height; r++ {
		if len(rows[r]) > width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrInconsistentRowWidth, r, len(rows[r]), width)
		}
		for c := 0; c < width; c++ {
			if c >= len(rows[r]) {
				return nil, fmt.Errorf("%w: row %d has no column %d",
					ErrInconsistentRowWidth, r, c)
			}
			v, ok := asBool(rows[r][c])
			if !ok {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %T",
					ErrInvalidCellType, r, c, rows[r][c])
			}
			cells = append(cells, cell{row: r, col: c, traversable: v})
		}
	}

	return cells, nil
}
