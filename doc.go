// Package calgrid is a toolkit for two-dimensional calibration tables —
// engine maps and similar controller lookup tables that engineers
// hand-edit as text and programmatically adjust or compare.
//
// Everything is organized under two library packages and one command:
//
//	table/      — the Grid data model, text parser/renderer, accessors,
//	              diff, neighborhood lookup, builder/clone, file I/O
//	plotscript/ — gnuplot script generation (3D surface, least-squares
//	              fit + scatter) from a Grid
//	cmd/calgrid — CLI wrappers: show, diff, adjust, plot
//
// Quick text-format example, a 2×2 map of cell values indexed by RPM
// (columns) and load (rows, bottom row = offset 0):
//
//	        rpm
//
//	      [1000]  [2000]
//	load  [90]    12      14
//	      [60]    16      18
//
// See table.Parse and table.Render for the format rules.
package calgrid
