// Package render draws elevation grids and routes: an ASCII overlay that
// marks each step of a path with an arrow, an ASCII table of search
// distances, and a Graphviz DOT digraph of the legal-step graph with an
// optional highlighted route.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/pathfind"
)

// ErrNilGrid indicates that a nil *elevation.Grid was passed.
var ErrNilGrid = errors.New("render: grid is nil")

// Overlay cell markers.
const (
	markEmpty = '.'
	markEnd   = 'E'
	markJump  = '?'
)

// Overlay renders g as text where every path cell except the last shows the
// direction of the next step ('^', '>', 'v', '<'), the last cell shows 'E'
// and every other cell '.'. Consecutive path cells that are not orthogonal
// neighbors are marked '?'. Path cells outside g are ignored.
func Overlay(g *elevation.Grid, path []elevation.Cell) string {
	canvas := make([][]byte, g.Height())
	for y := range canvas {
		canvas[y] = []byte(strings.Repeat(string(markEmpty), g.Width()))
	}
	for i, c := range path {
		if !g.InBounds(c) {
			continue
		}
		if i == len(path)-1 {
			canvas[c.Y][c.X] = markEnd
			continue
		}
		canvas[c.Y][c.X] = arrow(c, path[i+1])
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Distances renders the distance res recorded for every cell of g, one map
// row per line. Columns are right-aligned to the widest distance and
// separated by one space; cells res did not reach show '.'. A nil res marks
// every cell unreached.
func Distances(g *elevation.Grid, res *pathfind.Result) string {
	width := 1
	if res != nil {
		for _, d := range res.Dist {
			if w := len(strconv.Itoa(d)); w > width {
				width = w
			}
		}
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			field := string(markEmpty)
			if res != nil {
				if d, ok := res.DistanceTo(elevation.Cell{X: x, Y: y}); ok {
					field = strconv.Itoa(d)
				}
			}
			fmt.Fprintf(&sb, "%*s", width, field)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// arrow returns the marker for a single step from one cell to the next.
func arrow(from, to elevation.Cell) byte {
	switch (elevation.Cell{X: to.X - from.X, Y: to.Y - from.Y}) {
	case elevation.Cell{X: 0, Y: -1}:
		return '^'
	case elevation.Cell{X: 1, Y: 0}:
		return '>'
	case elevation.Cell{X: 0, Y: 1}:
		return 'v'
	case elevation.Cell{X: -1, Y: 0}:
		return '<'
	default:
		return markJump
	}
}

// DOTOptions configures DOT rendering.
type DOTOptions struct {
	// Name is the Graphviz graph name.
	Name string
	// Path is highlighted when non-empty.
	Path []elevation.Cell
	// Result, if set, limits nodes to cells it reached and adds their
	// distance to the anchor as a tooltip.
	Result *pathfind.Result
}

// DOTOption represents a functional option for DOT.
type DOTOption func(*DOTOptions)

// WithName sets the graph name (default "hillclimb").
func WithName(name string) DOTOption {
	return func(o *DOTOptions) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithPath highlights the given route.
func WithPath(path []elevation.Cell) DOTOption {
	return func(o *DOTOptions) {
		o.Path = path
	}
}

// WithResult restricts the drawing to cells reached by res.
func WithResult(res *pathfind.Result) DOTOption {
	return func(o *DOTOptions) {
		o.Result = res
	}
}

// Graph colors.
const (
	colorNode  = "#dddddd"
	colorPath  = "#d62728"
	colorStart = "#2ca02c"
	colorEnd   = "#1f77b4"
	colorEdge  = "#999999"
)

// DOT renders the legal-step graph of g as a Graphviz digraph. Each cell is
// a node named c_X_Y, labelled with its map letter and pinned to its grid
// position; each legal forward move is an edge.
func DOT(g *elevation.Grid, opts ...DOTOption) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	o := DOTOptions{Name: "hillclimb"}
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make(map[elevation.Cell]bool, len(o.Path))
	pathEdge := make(map[[2]elevation.Cell]bool, len(o.Path))
	for i, c := range o.Path {
		onPath[c] = true
		if i > 0 {
			pathEdge[[2]elevation.Cell{o.Path[i-1], c}] = true
		}
	}
	include := func(c elevation.Cell) bool {
		return o.Result == nil || o.Result.Reachable(c)
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(o.Name); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	for _, kv := range [][2]string{
		{"nodesep", "0.3"},
		{"ranksep", "0.3"},
		{"center", "true"},
	} {
		if err := graph.AddAttr(o.Name, kv[0], kv[1]); err != nil {
			return "", fmt.Errorf("render: graph attr %s: %w", kv[0], err)
		}
	}

	for _, c := range g.Cells() {
		if !include(c) {
			continue
		}
		if err := graph.AddNode(o.Name, nodeID(c), nodeAttrs(g, c, onPath[c], o.Result)); err != nil {
			return "", fmt.Errorf("render: node %s: %w", c, err)
		}
	}
	for _, c := range g.Cells() {
		if !include(c) {
			continue
		}
		for _, n := range g.NeighborsForward(c) {
			if !include(n) {
				continue
			}
			attrs := map[string]string{"color": quote(colorEdge)}
			if pathEdge[[2]elevation.Cell{c, n}] {
				attrs = map[string]string{"color": quote(colorPath), "penwidth": "2"}
			}
			if err := graph.AddEdge(nodeID(c), nodeID(n), true, attrs); err != nil {
				return "", fmt.Errorf("render: edge %s->%s: %w", c, n, err)
			}
		}
	}

	return graph.String(), nil
}

// nodeAttrs builds the attribute set of one cell node.
func nodeAttrs(g *elevation.Grid, c elevation.Cell, onPath bool, res *pathfind.Result) map[string]string {
	label := string(heightmap.Letter(g.Elevation(c)))
	fill := colorNode
	switch {
	case c == g.Start():
		label, fill = string(heightmap.StartMarker), colorStart
	case c == g.End():
		label, fill = string(heightmap.EndMarker), colorEnd
	case onPath:
		fill = colorPath
	}

	attrs := map[string]string{
		"label":     quote(label),
		"shape":     "square",
		"style":     "filled",
		"fillcolor": quote(fill),
		"fontsize":  "10",
		"pos":       quote(fmt.Sprintf("%d,%d!", c.X, -c.Y)),
	}
	if res != nil {
		if d, ok := res.DistanceTo(c); ok {
			attrs["tooltip"] = quote(fmt.Sprintf("%s dist=%d", c, d))
		}
	}
	return attrs
}

// nodeID returns the DOT identifier of c.
func nodeID(c elevation.Cell) string {
	return fmt.Sprintf("c_%d_%d", c.X, c.Y)
}

// quote wraps s as a DOT string literal.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
