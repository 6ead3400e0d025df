// Package elevation defines core types, options, and sentinel errors
// for the elevation subpackage of github.com/katalvlaran/hillclimb.
package elevation

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("elevation: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("elevation: all rows must have the same length")
	// ErrLevelOutOfRange indicates a cell value above the configured MaxLevel.
	ErrLevelOutOfRange = errors.New("elevation: cell level out of range")
	// ErrCellOutOfBounds indicates the start or end marker lies outside the grid.
	ErrCellOutOfBounds = errors.New("elevation: cell out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("elevation: invalid option supplied")
)

// Default option values.
const (
	// DefaultMaxClimb is the largest legal height gain of a single step.
	DefaultMaxClimb = 1
	// DefaultMaxLevel is the highest elevation ('z').
	DefaultMaxLevel uint8 = 25
)

// Cell addresses a grid position: X is the column, Y the row.
// Cell is a comparable value type and is used as a map key throughout.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less reports whether c precedes o in row-major order.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Compare returns -1, 0 or +1 as c sorts before, equal to or after o in row-major order.
func (c Cell) Compare(o Cell) int {
	switch {
	case c == o:
		return 0
	case c.Less(o):
		return -1
	default:
		return 1
	}
}

// offsets lists orthogonal neighbor deltas in N, E, S, W order.
var offsets = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Option configures grid construction via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*GridOptions)

// GridOptions contains tunable parameters for the step rule.
type GridOptions struct {
	// MaxClimb is the maximum elevation gain allowed for one forward step.
	MaxClimb int
	// MaxLevel is the highest valid elevation value.
	MaxLevel uint8

	err error
}

// DefaultGridOptions returns GridOptions with MaxClimb=1 and MaxLevel=25.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MaxClimb: DefaultMaxClimb,
		MaxLevel: DefaultMaxLevel,
	}
}

// WithMaxClimb sets the maximum elevation gain of a legal step.
// Negative values are rejected with ErrOptionViolation.
func WithMaxClimb(n int) Option {
	return func(o *GridOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}

// WithMaxLevel sets the highest valid elevation value.
func WithMaxLevel(l uint8) Option {
	return func(o *GridOptions) {
		o.MaxLevel = l
	}
}

// Grid is an immutable elevation map. Levels are stored in one flat
// row-major slice; cells are converted to indices with Index and back
// with Coordinate.
type Grid struct {
	width, height int
	levels        []uint8
	start, end    Cell
	opts          GridOptions
}
