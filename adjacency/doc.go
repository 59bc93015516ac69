// Package adjacency turns a 2D grid of traversable/blocked cells into an
// adjacency list keyed by linear cell IDs.
//
// What:
//
//   - Validates that the grid is rectangular, at least 2×2, and boolean-only.
//   - Numbers cells left-to-right, top-to-bottom: id = row*width + col.
//   - Links every traversable cell to its traversable orthogonal neighbors
//     in the fixed order up, down, left, right.
//   - Keeps blocked cells in the list with an empty neighbor slice, so every
//     id in [0, rows*width) is present.
//
// Why:
//
//   - The List is the only input the bfs package needs; building it once
//     per query keeps the search free of grid bookkeeping.
//
// Complexity:
//
//   - FromGrid / FromValues: O(W×H) time and memory.
//
// Errors:
//
//   - ErrGridTooSmall: fewer than 2 rows, or a first row shorter than 2.
//   - ErrInconsistentRowWidth: a row is longer or shorter than the first row.
//   - ErrInvalidCellType: a cell is not a bool (FromValues only).
//
// Validation runs in flatten order, so the first offending cell wins.
package adjacency
