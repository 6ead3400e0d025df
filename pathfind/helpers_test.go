package pathfind_test

import (
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// sample is the canonical 8×5 map: direct route 31 steps, nearest lowest 29.
const sample = `
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

// mustParse parses a height map or fails the test.
func mustParse(t testing.TB, s string) *elevation.Grid {
	t.Helper()
	g, err := heightmap.ParseString(s)
	require.NoError(t, err)
	return g
}

// mustGrid builds a grid from raw levels or fails the test.
func mustGrid(t testing.TB, values [][]uint8, start, end elevation.Cell) *elevation.Grid {
	t.Helper()
	g, err := elevation.New(values, start, end)
	require.NoError(t, err)
	return g
}

// requireLegalPath asserts that path runs from `from` to `to` and that every
// consecutive pair is a legal forward step.
func requireLegalPath(t testing.TB, g *elevation.Grid, path []elevation.Cell, from, to elevation.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, from, path[0], "path must start at %s", from)
	require.Equal(t, to, path[len(path)-1], "path must end at %s", to)
	for i := 1; i < len(path); i++ {
		require.True(t, g.CanStep(path[i-1], path[i]),
			"illegal step %d: %s(%d) -> %s(%d)",
			i, path[i-1], g.Elevation(path[i-1]), path[i], g.Elevation(path[i]))
	}
}

// bruteForceSteps runs a plain forward BFS from `from` using only CanStep and
// returns the number of steps to `to`, or -1 if unreachable.
func bruteForceSteps(g *elevation.Grid, from, to elevation.Cell) int {
	depth := map[elevation.Cell]int{from: 0}
	queue := []elevation.Cell{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == to {
			return depth[u]
		}
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			v := elevation.Cell{X: u.X + d[0], Y: u.Y + d[1]}
			if !g.CanStep(u, v) {
				continue
			}
			if _, seen := depth[v]; !seen {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return -1
}

// bruteForceNearest returns the minimum bruteForceSteps over every lowest
// cell, or -1 if none reaches the end.
func bruteForceNearest(g *elevation.Grid) int {
	best := -1
	for _, c := range g.CellsAt(g.MinElevation()) {
		s := bruteForceSteps(g, c, g.End())
		if s >= 0 && (best < 0 || s < best) {
			best = s
		}
	}
	return best
}

// randomGrid builds a seeded w×h grid with levels in [0,maxLevel] and random
// distinct start/end cells. Start is forced to level 0, end to maxLevel.
func randomGrid(t testing.TB, seed int64, w, h, maxLevel int) *elevation.Grid {
	t.Helper()
	gofakeit.Seed(seed)
	values := make([][]uint8, h)
	for y := range values {
		values[y] = make([]uint8, w)
		for x := range values[y] {
			values[y][x] = uint8(gofakeit.Number(0, maxLevel))
		}
	}
	start := elevation.Cell{X: gofakeit.Number(0, w-1), Y: gofakeit.Number(0, h-1)}
	end := start
	for end == start {
		end = elevation.Cell{X: gofakeit.Number(0, w-1), Y: gofakeit.Number(0, h-1)}
	}
	values[start.Y][start.X] = 0
	values[end.Y][end.X] = uint8(maxLevel)

	return mustGrid(t, values, start, end)
}
