// Package gridmap converts human-readable maps into the boolean grids and
// coordinates taken by package pathfind, and loads YAML scenario files.
//
// Map symbols:
//
//	.  traversable tile
//	#  wall
//	P  start (traversable)
//	Q  end (traversable)
//
// Spaces are ignored and rows are separated by newlines, so maps may be
// written with spaced columns:
//
//	. P . . .
//	. # # # .
//	. . Q . .
//
// Maps that break the grid size rules (ragged or smaller than 2×2) are
// returned as-is; pathfind rejects them with its own errors.
package gridmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/pathfind"
)

// Map symbols.
const (
	SymbolOpen  = '.'
	SymbolWall  = '#'
	SymbolStart = 'P'
	SymbolEnd   = 'Q'
)

var (
	// ErrMissingSymbol indicates a map without a start or an end symbol.
	ErrMissingSymbol = errors.New("gridmap: map should include a start and end position")
	// ErrUnexpectedSymbol indicates an unknown symbol or a repeated start/end.
	ErrUnexpectedSymbol = errors.New("gridmap: unexpected symbol")
)

// Map is a parsed map: the grid plus start and end positions.
type Map struct {
	Grid  [][]bool
	Start pathfind.Coord
	End   pathfind.Coord
}

// Parse reads a map. Leading and trailing blank lines are dropped, so a
// raw string literal may start on the line after its opening backquote.
// Returns ErrUnexpectedSymbol for unknown symbols or a second P or Q,
// and ErrMissingSymbol when P or Q is absent.
func Parse(s string) (*Map, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.Trim(s, "\n")
	lines := strings.Split(s, "\n")

	m := &Map{Grid: make([][]bool, len(lines))}
	var haveStart, haveEnd bool

	for r, line := range lines {
		row := make([]bool, 0, len(line))
		for c, sym := range []byte(line) {
			switch sym {
			case SymbolWall:
				row = append(row, false)
				continue
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: maps should only contain one start symbol (%d,%d)", ErrUnexpectedSymbol, r, c)
				}
				haveStart = true
				m.Start = pathfind.Coord{Row: r, Col: c}
			case SymbolEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: maps should only contain one end symbol (%d,%d)", ErrUnexpectedSymbol, r, c)
				}
				haveEnd = true
				m.End = pathfind.Coord{Row: r, Col: c}
			case SymbolOpen:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d); maps may only contain \"PQ#.\" and space",
					ErrUnexpectedSymbol, sym, r, c)
			}
			row = append(row, true)
		}
		m.Grid[r] = row
	}

	if !haveStart || !haveEnd {
		return nil, ErrMissingSymbol
	}

	return m, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Map {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String renders m back to the compact symbol form, one row per line.
func (m *Map) String() string {
	var sb strings.Builder
	for r, row := range m.Grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, open := range row {
			at := pathfind.Coord{Row: r, Col: c}
			switch {
			case at == m.Start:
				sb.WriteByte(SymbolStart)
			case at == m.End:
				sb.WriteByte(SymbolEnd)
			case open:
				sb.WriteByte(SymbolOpen)
			default:
				sb.WriteByte(SymbolWall)
			}
		}
	}
	return sb.String()
}

// Solve runs pathfind.PathFind on the map.
func (m *Map) Solve() (int, error) {
	return pathfind.PathFind(m.Grid, m.Start, m.End)
}
