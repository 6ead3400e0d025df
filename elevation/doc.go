// Package elevation treats a rectangular elevation map as an implicit
// directed graph of legal single steps.
//
// What:
//
//   - Grid wraps a rectangular [][]uint8 of levels (0 = 'a' … 25 = 'z') plus
//     a designated start and end cell.
//   - A forward step between orthogonal neighbors is legal when the
//     destination is at most MaxClimb (default 1) higher than the source.
//     Descending any amount is always legal.
//   - NeighborsForward lists legal steps out of a cell; NeighborsReverse
//     lists the cells from which a legal step leads into it.
//
// Why:
//
//   - Searching NeighborsReverse from the end cell yields the distance of
//     every cell to the end in one pass, so "closest of many starts"
//     queries cost a single search.
//
// Storage:
//
//   - Levels live in one flat row-major slice. Index and Coordinate convert
//     between Cell values and indices.
//
// Complexity:
//
//   - Elevation, CanStep, Neighbors*: O(1).
//   - MinElevation, CellsAt:         O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       input grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrLevelOutOfRange: a level exceeds MaxLevel.
//   - ErrCellOutOfBounds: start or end outside the grid.
//   - ErrOptionViolation: invalid Option (e.g. negative MaxClimb).
//
// Querying a cell outside the grid through Elevation, Index or the
// neighbor helpers panics: callers only ever pass grid-internal cells.
package elevation
