// Package plotscript: least-squares plane fit over the table cells.
package plotscript

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/calgrid/calgrid/table"
)

// fitPlane solves min ‖A·c − z‖ for the plane z = c0 + c1·x + c2·y over
// all N·M cells, one design row [1, x, y] per cell in grid order. Fails
// with ErrFitDegenerate when fewer than three cells exist or the
// coordinate grid is rank-deficient (e.g. a single-column table, where no
// unique slope in x exists).
// Complexity: O(N·M) to assemble, O(N·M·3²) for the QR solve.
func fitPlane(g *table.Grid) (c0, c1, c2 float64, err error) {
	n, m := g.Width(), g.Height()
	cells := n * m
	if cells < 3 {
		return 0, 0, 0, fmt.Errorf("plotscript: %d cells cannot determine a plane: %w", cells, ErrFitDegenerate)
	}

	xc, yc := g.XCoords(), g.YCoords()
	a := mat.NewDense(cells, 3, nil)
	z := mat.NewVecDense(cells, nil)
	i := 0
	for y := 0; y < m; y++ {
		row, _ := g.XVals(y)
		for x, v := range row {
			a.Set(i, 0, 1)
			a.Set(i, 1, xc[x])
			a.Set(i, 2, yc[y])
			z.SetVec(i, v)
			i++
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, z); err != nil {
		return 0, 0, 0, fmt.Errorf("plotscript: %v: %w", err, ErrFitDegenerate)
	}

	return c.AtVec(0), c.AtVec(1), c.AtVec(2), nil
}
