package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/bfs"
)

// openGrid returns an m×m grid with every cell traversable.
func openGrid(m int) [][]bool {
	grid := make([][]bool, m)
	for r := range grid {
		grid[r] = make([]bool, m)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}
	return grid
}

// BenchmarkShortestPath_Grid runs corner-to-corner BFS on an M×M open grid
// (M² cells, ≈4M² directed edges).
func BenchmarkShortestPath_Grid(b *testing.B) {
	const M = 200
	list, err := adjacency.FromGrid(openGrid(M))
	if err != nil {
		b.Fatalf("setup FromGrid failed: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(list, 0, M*M-1)
	}
}

// BenchmarkShortestPath_Sparse runs BFS on a grid with ~30% walls, where the
// destination is often unreachable and the whole component is drained.
func BenchmarkShortestPath_Sparse(b *testing.B) {
	const M = 200
	rnd := rand.New(rand.NewSource(42))
	grid := openGrid(M)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = rnd.Intn(10) >= 3
		}
	}
	grid[0][0], grid[M-1][M-1] = true, true
	list, err := adjacency.FromGrid(grid)
	if err != nil {
		b.Fatalf("setup FromGrid failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(list, 0, M*M-1)
	}
}

// BenchmarkPath compares distance-only search with parent tracking.
func BenchmarkPath(b *testing.B) {
	const M = 100
	list, _ := adjacency.FromGrid(openGrid(M))

	b.Run("Distance", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.ShortestPath(list, 0, M*M-1)
		}
	})
	b.Run("Path", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Path(list, 0, M*M-1)
		}
	})
}
