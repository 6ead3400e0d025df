// Package heightmap reads and writes the letter-based elevation map format:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// Letters 'a'…'z' are levels 0…25. 'S' marks the start cell (level of 'a'),
// 'E' marks the end cell (level of 'z'). Every row must have the same length.
package heightmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hillclimb/elevation"
)

// Sentinel errors for parsing.
var (
	// ErrUnexpectedRune indicates a character outside 'a'…'z', 'S' and 'E'.
	ErrUnexpectedRune = errors.New("heightmap: unexpected character")
	// ErrNoStart indicates the map has no 'S' marker.
	ErrNoStart = errors.New("heightmap: no start location found")
	// ErrNoEnd indicates the map has no 'E' marker.
	ErrNoEnd = errors.New("heightmap: no end location found")
	// ErrDuplicateMarker indicates more than one 'S' or 'E'.
	ErrDuplicateMarker = errors.New("heightmap: duplicate marker")
)

// Marker runes and the level range they map onto.
const (
	StartMarker = 'S'
	EndMarker   = 'E'

	lowest  = 'a'
	highest = 'z'
)

// StartLevel and EndLevel are the levels assigned to the marker cells.
const (
	StartLevel = uint8(0)
	EndLevel   = uint8(highest - lowest)
)

// Parse reads a height map from r. Blank lines before and after the map and
// whitespace around each row are ignored. Extra options are forwarded to
// elevation.New.
func Parse(r io.Reader, opts ...elevation.Option) (*elevation.Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}

	// Trim blank lines at both ends.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		values     = make([][]uint8, 0, len(lines))
		start, end *elevation.Cell
	)
	for y, line := range lines {
		row := make([]uint8, 0, len(line))
		for x, c := range []byte(line) {
			cell := elevation.Cell{X: x, Y: y}
			switch {
			case c >= lowest && c <= highest:
				row = append(row, c-lowest)
			case c == StartMarker:
				if start != nil {
					return nil, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateMarker, c, *start, cell)
				}
				start = &cell
				row = append(row, StartLevel)
			case c == EndMarker:
				if end != nil {
					return nil, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateMarker, c, *end, cell)
				}
				end = &cell
				row = append(row, EndLevel)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d in %q", ErrUnexpectedRune, c, y+1, x+1, line)
			}
		}
		values = append(values, row)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("heightmap: %w", elevation.ErrEmptyGrid)
	}
	if start == nil {
		return nil, ErrNoStart
	}
	if end == nil {
		return nil, ErrNoEnd
	}

	g, err := elevation.New(values, *start, *end, opts...)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	return g, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...elevation.Option) (*elevation.Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Letter returns the map character for level, '?' for levels above 'z'.
func Letter(level int) byte {
	if level < 0 || level > int(highest-lowest) {
		return '?'
	}
	return byte(lowest + level)
}

// Format renders g back into the text format, one row per line with a
// trailing newline. The start and end cells are written as 'S' and 'E'
// whatever their stored level.
func Format(g *elevation.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := elevation.Cell{X: x, Y: y}
			switch c {
			case g.Start():
				sb.WriteByte(StartMarker)
			case g.End():
				sb.WriteByte(EndMarker)
			default:
				sb.WriteByte(Letter(g.Elevation(c)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
