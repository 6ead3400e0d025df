// Package pathfind defines core types and configuration options
// for the single-source shortest-path search over an elevation.Grid.
//
// Options:
//
//	– Direction:   Reverse (default) follows NeighborsReverse so distances
//	               are measured *to* the anchor; Forward follows
//	               NeighborsForward so distances are measured *from* it.
//	– MaxDistance: optional cap; cells farther than this are not settled.
//	– OnSettle:    hook invoked once per finalized cell, in settle order.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrAnchorOutOfBounds if the anchor lies outside the grid.
//	– ErrOptionViolation   if an Option carries an invalid value.
//	– ErrNoPath            if a target is not connected to the anchor.
package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Sentinel errors returned by the search and query functions.
var (
	// ErrNilGrid indicates that a nil *elevation.Grid was passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrAnchorOutOfBounds indicates that the anchor cell is outside the grid.
	ErrAnchorOutOfBounds = errors.New("pathfind: anchor out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrNoPath indicates that the target is unreachable from the anchor.
	// It is an expected outcome, not a failure of the search.
	ErrNoPath = errors.New("pathfind: no path to target")
)

// Direction selects which adjacency view the search relaxes along.
type Direction int

const (
	// Reverse relaxes NeighborsReverse: Dist[c] is the number of legal
	// forward steps from c to the anchor.
	Reverse Direction = iota
	// Forward relaxes NeighborsForward: Dist[c] is the number of legal
	// forward steps from the anchor to c.
	Forward
)

// String returns "reverse" or "forward".
func (d Direction) String() string {
	switch d {
	case Reverse:
		return "reverse"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Options configures a Search.
type Options struct {
	Direction   Direction                        // Adjacency view to relax along
	MaxDistance int                              // Largest distance that may be settled
	OnSettle    func(c elevation.Cell, dist int) // Called once per finalized cell

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with Reverse direction, no distance cap
// and a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{
		Direction:   Reverse,
		MaxDistance: math.MaxInt,
		OnSettle:    func(elevation.Cell, int) {},
	}
}

// WithDirection selects Reverse or Forward relaxation.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d != Reverse && d != Forward {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithMaxDistance stops the search from settling cells farther than max.
// Negative values are rejected with ErrOptionViolation.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnSettle registers a callback run when a cell's distance is finalized.
func WithOnSettle(fn func(c elevation.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the outcome of one Search:
//   - Anchor:    the cell the search was rooted at.
//   - Direction: the adjacency view that was relaxed.
//   - Prev:      reachable cell → the neighbor one step closer to Anchor.
//     Anchor itself has no entry.
//   - Dist:      reachable cell → finalized distance; Dist[Anchor] == 0.
//   - Order:     cells in the order their distance was finalized.
//
// A Result is read-only once Search returns.
type Result struct {
	Anchor    elevation.Cell
	Direction Direction
	Prev      map[elevation.Cell]elevation.Cell
	Dist      map[elevation.Cell]int
	Order     []elevation.Cell
}

// Route is a concrete answer to a query: the path in travel order from
// From to To and its step count, len(Path)-1.
type Route struct {
	From, To elevation.Cell
	Path     []elevation.Cell
	Steps    int
}
