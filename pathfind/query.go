package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/elevation"
)

// ShortestPath answers the direct query: the fewest legal steps from
// g.Start() to g.End().
//
// It runs one Reverse search rooted at g.End() and reconstructs the path from
// g.Start(). Options other than the direction are passed through to Search.
// Returns ErrNoPath if the start cannot reach the end.
func ShortestPath(g *elevation.Grid, opts ...Option) (*Route, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	res, err := Search(g, g.End(), reverseOnly(opts)...)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(g.Start())
	if err != nil {
		return nil, err
	}

	return route(path), nil
}

// NearestLowest answers the "closest of many" query: among all cells at
// g.MinElevation(), the one with the fewest legal steps to g.End().
//
// Exactly one Reverse search rooted at g.End() is run; every candidate's
// path is reconstructed from that single predecessor map. Unconnected
// candidates are skipped. On equal step counts the candidate earliest in
// row-major order wins. Returns ErrNoPath if no candidate is connected.
func NearestLowest(g *elevation.Grid, opts ...Option) (*Route, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return NearestAmong(g, g.CellsAt(g.MinElevation()), opts...)
}

// NearestAmong is NearestLowest over an explicit candidate list.
func NearestAmong(g *elevation.Grid, candidates []elevation.Cell, opts ...Option) (*Route, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	res, err := Search(g, g.End(), reverseOnly(opts)...)
	if err != nil {
		return nil, err
	}

	var best []elevation.Cell
	for _, c := range candidates {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: candidate %s", elevation.ErrCellOutOfBounds, c)
		}
		path, err := res.PathTo(c)
		if errors.Is(err, ErrNoPath) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if best == nil || len(path) < len(best) {
			best = path
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: none of %d candidates reach %s", ErrNoPath, len(candidates), g.End())
	}

	return route(best), nil
}

// reverseOnly returns opts with the direction pinned to Reverse, without
// touching the caller's slice.
func reverseOnly(opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithDirection(Reverse))
}
