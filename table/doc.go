// Package table implements two-dimensional numeric calibration tables
// with a human-editable text serialization.
//
// A Grid is a rectangular M×N matrix of float64 values indexed by
// (x-offset, y-offset) pairs, with a numeric coordinate attached to every
// column (x-coordinate, e.g. RPM) and every row (y-coordinate, e.g. load).
// Offset 0 is always the leftmost column and the bottom displayed row.
//
// The table package provides:
//
//   - Parse / Render for the bracketed text format engineers hand-edit
//     (round-trip safe: Parse(Render(g)) is semantically equal to g).
//   - Bounds-checked accessors (Get, Set, XVals, YVals) and coordinate
//     replacement (SetXCoords, SetYCoords).
//   - Cell and coordinate comparison between two grids (Diff, Equal,
//     DiffXCoords, DiffYCoords).
//   - Neighborhood lookup (LookupPoints) selecting the block of cells
//     around the offsets nearest to a real-valued operating point, for
//     batch calibration edits.
//   - New (zero-filled builder), Clone (deep copy), and whole-file
//     Load / Save.
//
// All operations return sentinel errors (see errors.go) instead of
// panicking; match them with errors.Is. A Grid is not safe for concurrent
// use; callers sharing an instance across goroutines must serialize
// access.
package table
