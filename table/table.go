// Package table: constructors (zero-filled builder and deep clone).
package table

import (
	"fmt"
	"strings"
	"unicode"
)

// New constructs an xSize×ySize Grid with all-zero coordinates and
// values. Both titles are required and must be single tokens (no embedded
// whitespace) so they survive the text serialization; both sizes must be
// positive. Violations return ErrInvalidArgument.
//
// A 1-column grid is fully usable in memory but cannot be serialized:
// Render and Save return ErrUnrepresentable for it, because the text
// grammar reads a single-token coordinate header as a title line.
// Complexity: O(xSize·ySize) time and memory.
func New(xSize, ySize int, xTitle, yTitle string) (*Grid, error) {
	if xSize < 1 || ySize < 1 {
		return nil, fmt.Errorf("table: New(%d,%d): sizes must be positive: %w", xSize, ySize, ErrInvalidArgument)
	}
	if err := validTitle("x", xTitle); err != nil {
		return nil, err
	}
	if err := validTitle("y", yTitle); err != nil {
		return nil, err
	}

	vals := make([][]float64, ySize)
	for y := range vals {
		vals[y] = make([]float64, xSize)
	}

	return &Grid{
		xTitle:  xTitle,
		yTitle:  yTitle,
		xCoords: make([]float64, xSize),
		yCoords: make([]float64, ySize),
		vals:    vals,
	}, nil
}

// validTitle rejects empty titles and titles with embedded whitespace.
func validTitle(axis, title string) error {
	if title == "" {
		return fmt.Errorf("table: New: empty %s-title: %w", axis, ErrInvalidArgument)
	}
	if strings.ContainsFunc(title, unicode.IsSpace) {
		return fmt.Errorf("table: New: %s-title %q contains whitespace: %w", axis, title, ErrInvalidArgument)
	}

	return nil
}

// Clone returns a deep structural copy of g. The clone shares no mutable
// state with the original; mutating one never affects the other. The
// remembered file path is NOT carried over, so saving a clone requires an
// explicit path.
// Complexity: O(N·M) time and memory.
func (g *Grid) Clone() *Grid {
	vals := make([][]float64, len(g.vals))
	for y, row := range g.vals {
		vals[y] = make([]float64, len(row))
		copy(vals[y], row)
	}
	xc := make([]float64, len(g.xCoords))
	copy(xc, g.xCoords)
	yc := make([]float64, len(g.yCoords))
	copy(yc, g.yCoords)

	return &Grid{
		xTitle:  g.xTitle,
		yTitle:  g.yTitle,
		xCoords: xc,
		yCoords: yc,
		vals:    vals,
	}
}
