// Package table: core types for calibration grids.
package table

// Point is an (x-offset, y-offset) pair addressing one cell of a Grid.
// X counts columns from the left, Y counts rows from the bottom.
type Point struct {
	X, Y int
}

// Grid is a rectangular calibration table. vals[y][x] holds the value at
// column offset x and row offset y; offset 0 is the leftmost column and
// the bottom displayed row. xCoords and yCoords carry the numeric axis
// labels in the same offset order and are expected (not enforced) to be
// strictly ascending for LookupPoints to behave correctly.
//
// lastPath remembers the most recent Load/Save location so Save("") can
// write back to the same file.
type Grid struct {
	xTitle, yTitle string
	xCoords        []float64 // per column, offset 0 = leftmost
	yCoords        []float64 // per row, offset 0 = bottom
	vals           [][]float64
	lastPath       string
}

// Width returns N, the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int { return len(g.xCoords) }

// Height returns M, the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int { return len(g.yCoords) }

// XTitle returns the x-axis title ("" when the parsed text carried none).
func (g *Grid) XTitle() string { return g.xTitle }

// YTitle returns the y-axis title ("" when the parsed text carried none).
func (g *Grid) YTitle() string { return g.yTitle }
