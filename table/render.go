// Package table: Grid → canonical text renderer.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// cellSep separates the y-title column, the y-coordinate column, and each
// value column in the rendered layout.
const cellSep = "  "

// fmtNum renders a value with the shortest notation that round-trips
// through strconv.ParseFloat.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// bracketNum renders a coordinate cell, e.g. "[1.25]".
func bracketNum(v float64) string {
	return "[" + fmtNum(v) + "]"
}

// Render serializes g to the canonical aligned text layout: a blank line,
// the x-title centered over the body, a blank line, the bracketed
// x-coordinate header row, then data rows from the highest y-offset down
// to offset 0. The y-title occupies the vertically centered row of the
// header+data stack: stack row (M+1)/2 counting the coordinate header as
// row 0, which for M ≥ 1 always lands on a data row (never the header).
// Columns are left-aligned to their widest cell with two-space separators
// and no trailing whitespace.
//
// Render is deterministic: Parse(Render(g)) is semantically equal to g
// and Render(Parse(Render(g))) is byte-identical to Render(g). Fails with
// ErrLayout when the x-title is wider than the rendered body, and with
// ErrUnrepresentable for 1-column grids, whose single-token header line
// the grammar cannot distinguish from a title line. A grid without titles
// renders without the title line / title column.
// Complexity: O(N·M).
func Render(g *Grid) (string, error) {
	m, n := g.Height(), g.Width()
	if n < 2 {
		return "", fmt.Errorf("table: Render: %d column(s): %w", n, ErrUnrepresentable)
	}
	titleRow := (m + 1) / 2 // stack row carrying the y-title; header is row 0

	cols := n + 1 // y-coordinate column + N value columns
	hasYTitle := g.yTitle != ""
	if hasYTitle {
		cols++
	}

	// Materialize the cell matrix: stack row 0 is the coordinate header,
	// stack row s (1..M) is the data row at y-offset M−s.
	cells := make([][]string, 0, m+1)
	for s := 0; s <= m; s++ {
		row := make([]string, 0, cols)
		if hasYTitle {
			if s == titleRow {
				row = append(row, g.yTitle)
			} else {
				row = append(row, "")
			}
		}
		if s == 0 {
			row = append(row, "")
			for _, xc := range g.xCoords {
				row = append(row, bracketNum(xc))
			}
		} else {
			y := m - s
			row = append(row, bracketNum(g.yCoords[y]))
			for _, v := range g.vals[y] {
				row = append(row, fmtNum(v))
			}
		}
		cells = append(cells, row)
	}

	widths := make([]int, cols)
	for _, row := range cells {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}
	total := len(cellSep) * (cols - 1)
	for _, w := range widths {
		total += w
	}

	var b strings.Builder
	if g.xTitle != "" {
		if len(g.xTitle) > total {
			return "", fmt.Errorf("table: x-title %q wider than rendered body (%d chars): %w", g.xTitle, total, ErrLayout)
		}
		// Center with floor division; the leftover space falls on the right
		// and is simply not emitted.
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", (total-len(g.xTitle))/2))
		b.WriteString(g.xTitle)
		b.WriteString("\n\n")
	}
	for _, row := range cells {
		padded := make([]string, len(row))
		for c, cell := range row {
			padded[c] = cell + strings.Repeat(" ", widths[c]-len(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(padded, cellSep), " "))
		b.WriteByte('\n')
	}

	return b.String(), nil
}
