package elevation

import (
	"fmt"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of levels
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrLevelOutOfRange if a
// level exceeds MaxLevel, and ErrCellOutOfBounds if start or end lie
// outside the grid.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]uint8, start, end Cell, opts ...Option) (*Grid, error) {
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Flatten into the backing store, validating levels on the way.
	levels := make([]uint8, 0, w*h)
	for y, row := range values {
		for x, v := range row {
			if v > o.MaxLevel {
				return nil, fmt.Errorf("%w: %d at %s exceeds %d", ErrLevelOutOfRange, v, Cell{x, y}, o.MaxLevel)
			}
		}
		levels = append(levels, row...)
	}

	g := &Grid{
		width:  w,
		height: h,
		levels: levels,
		start:  start,
		end:    end,
		opts:   o,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrCellOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s", ErrCellOutOfBounds, end)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.levels) }

// Start returns the designated start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the designated end cell.
func (g *Grid) End() Cell { return g.end }

// MaxClimb returns the largest legal elevation gain of a single step.
func (g *Grid) MaxClimb() int { return g.opts.MaxClimb }

// MaxLevel returns the highest valid elevation value.
func (g *Grid) MaxLevel() int { return int(g.opts.MaxLevel) }

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index: Y*Width + X.
// Panics if c is out of bounds.
func (g *Grid) Index(c Cell) int {
	g.mustInBounds(c)
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Panics if idx is outside [0, Len()).
func (g *Grid) Coordinate(idx int) Cell {
	if idx < 0 || idx >= len(g.levels) {
		panic(fmt.Sprintf("elevation: index %d out of range [0,%d)", idx, len(g.levels)))
	}
	return Cell{X: idx % g.width, Y: idx / g.width}
}

// Elevation returns the level of c.
// Querying a cell outside the grid is a programming error and panics.
func (g *Grid) Elevation(c Cell) int {
	return int(g.levels[g.Index(c)])
}

// CanStep reports whether a forward move from one cell to the other is legal:
// both cells are in bounds, orthogonally adjacent, and the destination is at
// most MaxClimb higher than the source.
func (g *Grid) CanStep(from, to Cell) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx*dx+dy*dy != 1 {
		return false
	}
	return g.Elevation(to)-g.Elevation(from) <= g.opts.MaxClimb
}

// NeighborsReverse returns the orthogonal neighbors n of c such that a forward
// move n→c is legal, i.e. Elevation(c)-Elevation(n) <= MaxClimb.
// Searching along these edges from the end cell computes, in a single run,
// the distance of every cell to the end along legal forward moves.
// Order is N, E, S, W. Panics if c is out of bounds.
func (g *Grid) NeighborsReverse(c Cell) []Cell {
	h := g.Elevation(c)
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{c.X + d.X, c.Y + d.Y}
		if !g.InBounds(n) {
			continue
		}
		if h-g.Elevation(n) <= g.opts.MaxClimb {
			out = append(out, n)
		}
	}
	return out
}

// NeighborsForward returns the orthogonal neighbors n of c such that a forward
// move c→n is legal. Order is N, E, S, W. Panics if c is out of bounds.
func (g *Grid) NeighborsForward(c Cell) []Cell {
	h := g.Elevation(c)
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{c.X + d.X, c.Y + d.Y}
		if !g.InBounds(n) {
			continue
		}
		if g.Elevation(n)-h <= g.opts.MaxClimb {
			out = append(out, n)
		}
	}
	return out
}

// MinElevation returns the lowest level present in the grid.
// Complexity: O(W×H).
func (g *Grid) MinElevation() int {
	lo := g.levels[0]
	for _, v := range g.levels[1:] {
		if v < lo {
			lo = v
		}
	}
	return int(lo)
}

// CellsAt returns every cell whose level equals level, in row-major order.
// Complexity: O(W×H).
func (g *Grid) CellsAt(level int) []Cell {
	var out []Cell
	for i, v := range g.levels {
		if int(v) == level {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Cells returns all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.levels))
	for i := range g.levels {
		out[i] = g.Coordinate(i)
	}
	return out
}

// Rows returns a deep copy of the levels as values[y][x].
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y := range rows {
		rows[y] = make([]uint8, g.width)
		copy(rows[y], g.levels[y*g.width:(y+1)*g.width])
	}
	return rows
}

// mustInBounds panics with a descriptive message if c is outside the grid.
func (g *Grid) mustInBounds(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("elevation: cell %s out of bounds %dx%d", c, g.width, g.height))
	}
}
