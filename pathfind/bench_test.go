package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/pathfind"
)

// buildBenchGrid returns a deterministic n×n grid with gentle random slopes
// so that most cells are connected to the far corner.
func buildBenchGrid(b *testing.B, n int) *elevation.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	values := make([][]uint8, n)
	for y := range values {
		values[y] = make([]uint8, n)
		for x := range values[y] {
			values[y][x] = uint8((x+y)*25/(2*n-2)) + uint8(r.Intn(2))
			if values[y][x] > 25 {
				values[y][x] = 25
			}
		}
	}
	g, err := elevation.New(values, elevation.Cell{}, elevation.Cell{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return g
}

// BenchmarkSearch measures one reverse search over a 300×300 grid.
func BenchmarkSearch(b *testing.B) {
	g := buildBenchGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.Search(g, g.End())
	}
}

// BenchmarkNearestLowest measures the shared-search query over a 300×300 grid.
func BenchmarkNearestLowest(b *testing.B) {
	g := buildBenchGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.NearestLowest(g)
	}
}
