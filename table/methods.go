// Package table: bounds-checked cell and coordinate accessors.
package table

import "fmt"

// gridErrorf wraps a sentinel with method context and callsite offsets.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}

// checkOffsets validates 0 ≤ x < N and 0 ≤ y < M. Negative offsets are
// rejected explicitly rather than left as caller error.
// Complexity: O(1).
func (g *Grid) checkOffsets(method string, x, y int) error {
	if x < 0 || x >= g.Width() || y < 0 || y >= g.Height() {
		return gridErrorf(method, x, y, ErrOutOfRange)
	}

	return nil
}

// Get retrieves the value at column offset x, row offset y (offset 0 =
// left column / bottom row). Fails with ErrOutOfRange outside the grid.
// Complexity: O(1).
func (g *Grid) Get(x, y int) (float64, error) {
	if err := g.checkOffsets("Get", x, y); err != nil {
		return 0, err
	}

	return g.vals[y][x], nil
}

// Set assigns v at column offset x, row offset y, mutating the grid in
// place. Same bounds contract as Get.
// Complexity: O(1).
func (g *Grid) Set(x, y int, v float64) error {
	if err := g.checkOffsets("Set", x, y); err != nil {
		return err
	}
	g.vals[y][x] = v

	return nil
}

// XCoords returns a copy of the x-coordinates, offset 0 = leftmost
// column.
// Complexity: O(N).
func (g *Grid) XCoords() []float64 {
	out := make([]float64, len(g.xCoords))
	copy(out, g.xCoords)

	return out
}

// YCoords returns a copy of the y-coordinates, offset 0 = bottom row.
// Complexity: O(M).
func (g *Grid) YCoords() []float64 {
	out := make([]float64, len(g.yCoords))
	copy(out, g.yCoords)

	return out
}

// SetXCoords replaces the x-coordinate list. The supplied slice must have
// length N (ErrDimensionMismatch otherwise) and should be strictly
// ascending by offset; the grid does not re-sort, and LookupPoints relies
// on the ordering.
// Complexity: O(N).
func (g *Grid) SetXCoords(coords []float64) error {
	if len(coords) != g.Width() {
		return fmt.Errorf("Grid.SetXCoords: got %d coordinates for %d columns: %w", len(coords), g.Width(), ErrDimensionMismatch)
	}
	copy(g.xCoords, coords)

	return nil
}

// SetYCoords replaces the y-coordinate list; length must equal M. Same
// ordering obligation as SetXCoords (offset 0 = bottom row).
// Complexity: O(M).
func (g *Grid) SetYCoords(coords []float64) error {
	if len(coords) != g.Height() {
		return fmt.Errorf("Grid.SetYCoords: got %d coordinates for %d rows: %w", len(coords), g.Height(), ErrDimensionMismatch)
	}
	copy(g.yCoords, coords)

	return nil
}

// XVals returns a copy of the full value row at the given y-offset,
// ordered left to right (length N). Fails with ErrOutOfRange when
// y < 0 or y ≥ M — the check is against the row count M, the dimension
// actually being indexed.
// Complexity: O(N).
func (g *Grid) XVals(y int) ([]float64, error) {
	if y < 0 || y >= g.Height() {
		return nil, gridErrorf("XVals", 0, y, ErrOutOfRange)
	}
	out := make([]float64, len(g.vals[y]))
	copy(out, g.vals[y])

	return out, nil
}

// YVals returns a copy of the value column at the given x-offset, ordered
// by increasing y-offset (length M). Fails with ErrOutOfRange when x < 0
// or x ≥ N.
// Complexity: O(M).
func (g *Grid) YVals(x int) ([]float64, error) {
	if x < 0 || x >= g.Width() {
		return nil, gridErrorf("YVals", x, 0, ErrOutOfRange)
	}
	out := make([]float64, g.Height())
	for y := range g.vals {
		out[y] = g.vals[y][x]
	}

	return out, nil
}
