// Package table: nearest-neighborhood lookup over the coordinate grid.
package table

import "fmt"

// LookupPoints returns the block of cell offsets within rng steps of the
// grid point nearest to the operating point (xVal, yVal).
//
// Algorithm:
//  1. Per axis, find the offset whose coordinate is nearest to the input:
//     values at or below the first coordinate clamp to offset 0, values
//     at or above the last clamp to the highest offset, and anything in
//     between takes the closer of the two bracketing coordinates (ties go
//     to the lower offset). Coordinates must be ascending by offset.
//  2. Clamp [nearest−rng, nearest+rng] per axis to the grid.
//  3. Return the Cartesian product, x-offset outer ascending, y-offset
//     inner ascending. Each pair appears exactly once.
//
// A negative rng fails with ErrInvalidArgument. Used to select a
// neighborhood of calibration cells around an operating point for batch
// edits ("nudge every cell near 2000 RPM / 85 kPa by +2").
// Complexity: O(N + M + rng²).
func (g *Grid) LookupPoints(xVal, yVal float64, rng int) ([]Point, error) {
	if rng < 0 {
		return nil, fmt.Errorf("Grid.LookupPoints: negative range %d: %w", rng, ErrInvalidArgument)
	}

	xLo, xHi := clampSpan(nearestOffset(g.xCoords, xVal), rng, g.Width())
	yLo, yHi := clampSpan(nearestOffset(g.yCoords, yVal), rng, g.Height())

	points := make([]Point, 0, (xHi-xLo+1)*(yHi-yLo+1))
	for x := xLo; x <= xHi; x++ {
		for y := yLo; y <= yHi; y++ {
			points = append(points, Point{X: x, Y: y})
		}
	}

	return points, nil
}

// nearestOffset locates the offset whose coordinate is numerically
// closest to v, assuming coords is ascending. The comparison uses strict
// "greater distance" to move to the higher offset, so an exact midpoint
// stays on the lower one.
// Complexity: O(len(coords)).
func nearestOffset(coords []float64, v float64) int {
	last := len(coords) - 1
	if v <= coords[0] {
		return 0
	}
	if v >= coords[last] {
		return last
	}
	for i := 0; i < last; i++ {
		if v > coords[i+1] {
			continue
		}
		// coords[i] < v ≤ coords[i+1]
		if v-coords[i] > coords[i+1]-v {
			return i + 1
		}

		return i
	}

	return last
}

// clampSpan clamps [center−rng, center+rng] to [0, size−1].
func clampSpan(center, rng, size int) (lo, hi int) {
	lo = center - rng
	if lo < 0 {
		lo = 0
	}
	hi = center + rng
	if hi > size-1 {
		hi = size - 1
	}

	return lo, hi
}
