package pathfind

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/hillclimb/elevation"
)

// ReconstructPath walks prev from target back toward anchor and returns the
// visited cells in walk order: target first, anchor last, both inclusive.
//
// If target == anchor the path is [anchor]. If the walk stops at a cell other
// than anchor, target is not connected to anchor and ErrNoPath is returned
// with no partial path.
//
// Complexity: O(path length).
func ReconstructPath(prev map[elevation.Cell]elevation.Cell, anchor, target elevation.Cell) ([]elevation.Cell, error) {
	path := []elevation.Cell{target}
	for cur := target; cur != anchor; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s not connected to %s", ErrNoPath, target, anchor)
		}
		// A predecessor chain longer than the map is a cycle.
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle at %s", ErrNoPath, cur)
		}
		path = append(path, p)
		cur = p
	}

	return path, nil
}

// Steps returns the number of moves along path: len(path)-1, or 0 for an
// empty path.
func Steps(path []elevation.Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// Reachable reports whether c was settled by the search.
func (r *Result) Reachable(c elevation.Cell) bool {
	_, ok := r.Dist[c]
	return ok
}

// DistanceTo returns the finalized distance between c and the anchor and
// whether c was reached at all.
func (r *Result) DistanceTo(c elevation.Cell) (int, bool) {
	d, ok := r.Dist[c]
	return d, ok
}

// PathTo reconstructs the path between target and the anchor in travel
// order: for a Reverse search that is target → … → anchor (legal forward
// moves into the anchor); for a Forward search anchor → … → target.
// Returns ErrNoPath if target was not reached.
func (r *Result) PathTo(target elevation.Cell) ([]elevation.Cell, error) {
	path, err := ReconstructPath(r.Prev, r.Anchor, target)
	if err != nil {
		return nil, err
	}
	if r.Direction == Forward {
		slices.Reverse(path)
	}

	return path, nil
}

// Cells returns every reached cell in row-major order.
func (r *Result) Cells() []elevation.Cell {
	cells := maps.Keys(r.Dist)
	slices.SortFunc(cells, elevation.Cell.Compare)
	return cells
}

// route wraps a travel-order path into a Route.
func route(path []elevation.Cell) *Route {
	return &Route{
		From:  path[0],
		To:    path[len(path)-1],
		Path:  path,
		Steps: Steps(path),
	}
}
