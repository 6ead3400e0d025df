// Package pathfind implements a Dijkstra-style single-source search over the
// legal-step graph of an elevation.Grid.
//
// Notes on implementation choices:
//
//   - Every edge costs 1, so the settle order equals breadth-first layers, but
//     the search keeps the priority-frontier formulation.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries when they are popped.
//   - Equal distances are popped in row-major cell order, so two searches with
//     the same anchor produce identical results.
//   - Per-run state is kept in flat slices indexed by elevation.Grid.Index and
//     exported as maps once the search finishes.
package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Search computes shortest step counts between anchor and every cell that is
// connected to it in the grid's legal-step graph.
//
// With the default Reverse direction the result answers "how far is each cell
// from anchor along legal forward moves", which lets one run rooted at the
// end cell serve any number of start candidates.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. anchor must lie inside g (ErrAnchorOutOfBounds).
//
// Complexity:
//
//   - Time:  O(C log C), C = W×H (each cell has at most 4 edges).
//   - Space: O(C).
func Search(g *elevation.Grid, anchor elevation.Cell, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and anchor
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(anchor) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrAnchorOutOfBounds, anchor, g.Width(), g.Height())
	}

	// 3) Run with fresh state
	r := newRunner(g, anchor, cfg)
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *elevation.Grid
	anchor  elevation.Cell
	options Options
	dist    []int    // index → best known distance, math.MaxInt if unseen
	prev    []int    // index → predecessor index, -1 if none
	settled []bool   // index → distance finalized
	order   []int    // settle order
	pq      frontier // min-heap of pending entries
	expand  func(elevation.Cell) []elevation.Cell
}

func newRunner(g *elevation.Grid, anchor elevation.Cell, cfg Options) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		anchor:  anchor,
		options: cfg,
		dist:    make([]int, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		order:   make([]int, 0, n),
		pq:      make(frontier, 0, n),
	}
	if cfg.Direction == Forward {
		r.expand = g.NeighborsForward
	} else {
		r.expand = g.NeighborsReverse
	}
	return r
}

// init sets every distance to +∞, clears predecessors and seeds the frontier
// with the anchor at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
		r.prev[i] = -1
	}
	a := r.g.Index(r.anchor)
	r.dist[a] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{cell: r.anchor, idx: a, dist: 0})
}

// process pops entries in ascending (distance, cell) order until the frontier
// is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)

		// Stale duplicate from an earlier, worse insertion.
		if r.settled[item.idx] || item.dist != r.dist[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[item.idx] = true
		r.order = append(r.order, item.idx)
		r.options.OnSettle(item.cell, item.dist)

		r.relax(item)
	}
}

// relax tries to improve every neighbor of the popped cell through it.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u frontierItem) {
	alt := u.dist + 1
	if alt > r.options.MaxDistance {
		return
	}
	for _, n := range r.expand(u.cell) {
		v := r.g.Index(n)
		// Strict improvement only; equal distances keep the first predecessor.
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u.idx
		heap.Push(&r.pq, frontierItem{cell: n, idx: v, dist: alt})
	}
}

// result exports the settled cells as maps.
// Cells that were reached but never settled (beyond MaxDistance) are omitted.
func (r *runner) result() *Result {
	res := &Result{
		Anchor:    r.anchor,
		Direction: r.options.Direction,
		Prev:      make(map[elevation.Cell]elevation.Cell, len(r.order)),
		Dist:      make(map[elevation.Cell]int, len(r.order)),
		Order:     make([]elevation.Cell, len(r.order)),
	}
	for i, idx := range r.order {
		c := r.g.Coordinate(idx)
		res.Order[i] = c
		res.Dist[c] = r.dist[idx]
		if p := r.prev[idx]; p >= 0 {
			res.Prev[c] = r.g.Coordinate(p)
		}
	}
	return res
}

// frontierItem is one pending (cell, tentative distance) pair.
type frontierItem struct {
	cell elevation.Cell
	idx  int // row-major index of cell
	dist int
}

// frontier orders pending cells by tentative distance, then by row-major
// index, so cells at equal distance settle top-to-bottom, left-to-right.
type frontier []frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a pending cell; heap.Push restores the ordering afterwards.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop detaches the tail entry, which heap.Pop has already swapped into place
// as the closest pending cell.
func (pq *frontier) Pop() interface{} {
	last := len(*pq) - 1
	item := (*pq)[last]
	*pq = (*pq)[:last]
	return item
}
