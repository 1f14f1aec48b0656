// Package plotscript: script assembly for the supported formats.
package plotscript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/calgrid/calgrid/table"
)

// Format selects the script flavor produced by Render.
type Format int

const (
	// Persp is a 3D perspective surface plot of the full table.
	Persp Format = iota
	// FitScatter is a scatter of the cells plus a least-squares plane.
	FitScatter
)

// Sentinel errors for plotscript operations.
var (
	// ErrUnknownFormat indicates a Format value outside the supported set.
	ErrUnknownFormat = errors.New("plotscript: unknown plot format")
	// ErrFitDegenerate indicates the least-squares system has no unique
	// plane (fewer than three cells, or a rank-deficient coordinate grid).
	ErrFitDegenerate = errors.New("plotscript: least-squares system is degenerate")
)

// Render produces the gnuplot script for g in the requested format.
// Complexity: O(N·M) for Persp, O(N·M) plus the 3-column QR solve for
// FitScatter.
func Render(g *table.Grid, f Format) (string, error) {
	switch f {
	case Persp:
		return renderPersp(g), nil
	case FitScatter:
		return renderFitScatter(g)
	default:
		return "", fmt.Errorf("plotscript: format %d: %w", f, ErrUnknownFormat)
	}
}

// renderPersp emits the surface script. dgrid3d is sized rows,cols so
// gnuplot reconstructs the exact table topology from the triples.
func renderPersp(g *table.Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# calgrid surface: %d cols x %d rows\n", g.Width(), g.Height())
	writeLabels(&b, g)
	fmt.Fprintf(&b, "set dgrid3d %d,%d\n", g.Height(), g.Width())
	b.WriteString("set hidden3d\n")
	b.WriteString("set view 60,30\n")
	b.WriteString("splot '-' using 1:2:3 with lines notitle\n")
	writeTriples(&b, g)

	return b.String()
}

// renderFitScatter emits the scatter + fitted-plane script. The plane
// coefficients are solved here (see fit.go) and inlined as gnuplot
// variables.
func renderFitScatter(g *table.Grid) (string, error) {
	c0, c1, c2, err := fitPlane(g)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# calgrid fit: %d cols x %d rows\n", g.Width(), g.Height())
	writeLabels(&b, g)
	fmt.Fprintf(&b, "c0 = %s\n", fmtCoef(c0))
	fmt.Fprintf(&b, "c1 = %s\n", fmtCoef(c1))
	fmt.Fprintf(&b, "c2 = %s\n", fmtCoef(c2))
	b.WriteString("f(x,y) = c0 + c1*x + c2*y\n")
	b.WriteString("splot '-' using 1:2:3 with points pointtype 7 title 'cells', f(x,y) with lines title 'least-squares fit'\n")
	writeTriples(&b, g)

	return b.String(), nil
}

// writeLabels emits the axis labels from the table titles.
func writeLabels(b *strings.Builder, g *table.Grid) {
	fmt.Fprintf(b, "set xlabel %q\n", g.XTitle())
	fmt.Fprintf(b, "set ylabel %q\n", g.YTitle())
}

// writeTriples emits the inline x/y/z data block in grid order: rows
// bottom-up (y-offset ascending), columns left to right.
func writeTriples(b *strings.Builder, g *table.Grid) {
	xc, yc := g.XCoords(), g.YCoords()
	for y := 0; y < g.Height(); y++ {
		row, _ := g.XVals(y)
		for x, v := range row {
			fmt.Fprintf(b, "%s %s %s\n", fmtCoef(xc[x]), fmtCoef(yc[y]), fmtCoef(v))
		}
	}
	b.WriteString("e\n")
}

func fmtCoef(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
