package render_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/pathfind"
	"github.com/katalvlaran/hillclimb/render"
)

const sample = `
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func TestOverlay_Handmade(t *testing.T) {
	g, err := heightmap.ParseString("Sab\ndcE")
	require.NoError(t, err)

	path := []elevation.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}
	assert.Equal(t, ">>v\n..E\n", render.Overlay(g, path))

	// Leftward and upward moves, then a jump that is not a single step.
	path = []elevation.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}}
	assert.Equal(t, ".?.\n.^E\n", render.Overlay(g, path))
}

func TestOverlay_Directions(t *testing.T) {
	g, err := heightmap.ParseString("Sa\naE")
	require.NoError(t, err)

	// Clockwise loop ending back at the start.
	path := []elevation.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	assert.Equal(t, "Ev\n^<\n", render.Overlay(g, path))
}

func TestOverlay_Sample(t *testing.T) {
	g, err := heightmap.ParseString(sample)
	require.NoError(t, err)
	r, err := pathfind.ShortestPath(g)
	require.NoError(t, err)

	out := render.Overlay(g, r.Path)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, g.Height())
	for _, l := range lines {
		assert.Len(t, l, g.Width())
	}

	arrows := strings.Count(out, "^") + strings.Count(out, ">") + strings.Count(out, "v") + strings.Count(out, "<")
	assert.Equal(t, r.Steps, arrows)
	assert.Equal(t, 1, strings.Count(out, "E"))
	assert.NotContains(t, out, "?")
	assert.Equal(t, byte('E'), lines[g.End().Y][g.End().X])

	// Row-major tie-breaking makes the drawn route deterministic.
	assert.Equal(t, ">>vv<<<<\n..vvv<<^\n..vv>E^^\n..v>>>^^\n..>>>>>^\n", out)
}

func TestDistances_Handmade(t *testing.T) {
	g, err := heightmap.ParseString("SzE")
	require.NoError(t, err)
	res, err := pathfind.Search(g, g.End())
	require.NoError(t, err)

	// S cannot climb onto z, so it stays unreached.
	assert.Equal(t, ". 1 0\n", render.Distances(g, res))
	assert.Equal(t, ". . .\n", render.Distances(g, nil))
}

func TestDistances_Alignment(t *testing.T) {
	g, err := heightmap.ParseString("SabcdefghijklmnopqrstuvwxyzE")
	require.NoError(t, err)

	res, err := pathfind.Search(g, g.End())
	require.NoError(t, err)
	out := render.Distances(g, res)
	assert.True(t, strings.HasPrefix(out, "27 26 25 "), out)
	assert.True(t, strings.HasSuffix(out, " 9  8  7  6  5  4  3  2  1  0\n"), out)

	res, err = pathfind.Search(g, g.End(), pathfind.WithMaxDistance(10))
	require.NoError(t, err)
	out = render.Distances(g, res)
	assert.True(t, strings.HasPrefix(out, " .  .  . "), out)
	assert.True(t, strings.HasSuffix(out, "10  9  8  7  6  5  4  3  2  1  0\n"), out)
	assert.Equal(t, 11, len(res.Dist))
}

func TestDistances_Sample(t *testing.T) {
	g, err := heightmap.ParseString(sample)
	require.NoError(t, err)
	res, err := pathfind.Search(g, g.End())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(render.Distances(g, res), "\n"), "\n")
	require.Len(t, lines, g.Height())
	assert.True(t, strings.HasPrefix(lines[0], "31 30 29 "), lines[0])
	for _, l := range lines {
		assert.Len(t, l, g.Width()*3-1)
	}
	assert.Equal(t, " 0", lines[2][5*3:5*3+2])
}

func TestOverlay_EmptyPath(t *testing.T) {
	g, err := heightmap.ParseString("SE")
	require.NoError(t, err)
	assert.Equal(t, "..\n", render.Overlay(g, nil))
}

func TestDOT(t *testing.T) {
	g, err := elevation.New([][]uint8{
		{0, 1, 2},
		{0, 0, 3},
	}, elevation.Cell{X: 0, Y: 0}, elevation.Cell{X: 2, Y: 1})
	require.NoError(t, err)
	r, err := pathfind.ShortestPath(g)
	require.NoError(t, err)
	require.Equal(t, 3, r.Steps)

	out, err := render.DOT(g, render.WithPath(r.Path), render.WithName("route"))
	require.NoError(t, err)

	assert.Contains(t, out, "digraph route")
	for _, c := range g.Cells() {
		assert.Contains(t, out, "c_"+strconv.Itoa(c.X)+"_"+strconv.Itoa(c.Y))
	}
	assert.Contains(t, out, `"#d62728"`, "path must be highlighted")
	assert.Contains(t, out, `"S"`)
	assert.Contains(t, out, `"E"`)
	// (1,1) -> (2,1) climbs three levels and must not be drawn.
	assert.NotContains(t, out, "c_1_1->c_2_1")
}

func TestDOT_ReachableOnly(t *testing.T) {
	g, err := heightmap.ParseString("SazE\naayz")
	require.NoError(t, err)
	res, err := pathfind.Search(g, g.End())
	require.NoError(t, err)

	out, err := render.DOT(g, render.WithResult(res))
	require.NoError(t, err)
	assert.NotContains(t, out, "c_0_0", "unreached start must be omitted")
	assert.Contains(t, out, "c_3_0")
	assert.Contains(t, out, "dist=2")
}

func TestDOT_NilGrid(t *testing.T) {
	_, err := render.DOT(nil)
	assert.ErrorIs(t, err, render.ErrNilGrid)
}
