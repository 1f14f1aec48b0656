// Package table: cell-by-cell and coordinate comparison between grids.
package table

import "fmt"

// checkSameShape validates that both grids share N and M.
func (g *Grid) checkSameShape(method string, other *Grid) error {
	if g.Width() != other.Width() || g.Height() != other.Height() {
		return fmt.Errorf("Grid.%s: %dx%d vs %dx%d: %w",
			method, g.Width(), g.Height(), other.Width(), other.Height(), ErrDimensionMismatch)
	}

	return nil
}

// Diff compares values cell-by-cell over the full N×M grid and returns
// every mismatching offset pair in scan order (x outer, y inner).
// Coordinates and titles are not compared. An empty result with a nil
// error means the grids hold identical values; grids of different
// dimensions fail with ErrDimensionMismatch.
// Complexity: O(N·M).
func (g *Grid) Diff(other *Grid) ([]Point, error) {
	if err := g.checkSameShape("Diff", other); err != nil {
		return nil, err
	}

	var diffs []Point
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if g.vals[y][x] != other.vals[y][x] {
				diffs = append(diffs, Point{X: x, Y: y})
			}
		}
	}

	return diffs, nil
}

// Equal is the stop-early variant of Diff: it reports whether every cell
// matches, returning on the first mismatch. Same shape contract as Diff.
// Complexity: O(N·M) worst case.
func (g *Grid) Equal(other *Grid) (bool, error) {
	if err := g.checkSameShape("Equal", other); err != nil {
		return false, err
	}

	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if g.vals[y][x] != other.vals[y][x] {
				return false, nil
			}
		}
	}

	return true, nil
}

// DiffXCoords pairwise-compares x-coordinates at the same offset and
// returns the offsets where they differ (numeric inequality). Fails with
// ErrDimensionMismatch when the lists have different lengths.
// Complexity: O(N).
func (g *Grid) DiffXCoords(other *Grid) ([]int, error) {
	return diffCoords("DiffXCoords", g.xCoords, other.xCoords)
}

// DiffYCoords is DiffXCoords for the y-axis.
// Complexity: O(M).
func (g *Grid) DiffYCoords(other *Grid) ([]int, error) {
	return diffCoords("DiffYCoords", g.yCoords, other.yCoords)
}

func diffCoords(method string, a, b []float64) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Grid.%s: %d vs %d coordinates: %w", method, len(a), len(b), ErrDimensionMismatch)
	}

	var diffs []int
	for i := range a {
		if a[i] != b[i] {
			diffs = append(diffs, i)
		}
	}

	return diffs, nil
}
