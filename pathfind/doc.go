// Package pathfind finds fewest-step routes over an elevation.Grid, where a
// step to an orthogonal neighbor is legal only if it climbs at most MaxClimb
// (one level by default).
//
// Overview:
//
//   - Search runs a single-source Dijkstra-style search from an anchor cell
//     and returns a Result with the distance of every connected cell, its
//     predecessor one step closer to the anchor, and the settle order.
//   - With the default Reverse direction the search follows
//     elevation.Grid.NeighborsReverse, i.e. legal forward moves walked
//     backwards. Rooted at the end cell, one run therefore answers "how far
//     from the end is every cell" for any number of start candidates.
//   - ReconstructPath and Result.PathTo walk the predecessor map back to the
//     anchor; an unconnected target yields ErrNoPath, never a partial path.
//
// Query modes:
//
//   - ShortestPath(g):   start → end, one Reverse search rooted at the end.
//   - NearestLowest(g):  closest lowest-level cell → end, the same single
//     search reused for every candidate.
//   - NearestAmong(g,c): the same over an explicit candidate list.
//
// Determinism:
//
//   - The frontier pops equal distances in row-major cell order, and a
//     predecessor is only replaced on strict improvement, so repeated
//     searches over the same grid and anchor produce identical Results.
//
// Performance and complexity:
//
//   - Time:  O(C log C) for C = W×H cells; each cell has at most 4 edges.
//   - Space: O(C) for distance, predecessor and settled tables plus the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrAnchorOutOfBounds, ErrOptionViolation: invalid input.
//   - ErrNoPath: the target is not connected to the anchor. This is an
//     ordinary outcome that callers branch on with errors.Is.
//
// Thread safety:
//
//   - A Search owns all of its state; the grid is only read. Independent
//     searches over one grid may run concurrently, a single search is
//     strictly sequential.
package pathfind
