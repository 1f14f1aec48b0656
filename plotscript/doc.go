// Package plotscript generates gnuplot scripts from calibration grids.
//
// Two target formats are supported:
//
//   - Persp: a 3D perspective surface of the table (splot over a dgrid3d
//     sized to the table dimensions).
//   - FitScatter: the table cells as a 3D scatter together with the
//     least-squares plane z = c0 + c1·x + c2·y, solved in-process so the
//     script does not depend on gnuplot's fit machinery.
//
// Both scripts embed the flattened x/y/z triples in grid order (rows
// bottom-up, columns left to right), the table's axis titles as labels,
// and the table dimensions. The output is plain text; feeding it to
// gnuplot is up to the caller.
package plotscript
