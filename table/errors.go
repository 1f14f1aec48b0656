// Package table: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// table package. All operations return these sentinels (wrapped with
// context via %w) and tests check them via errors.Is. No operation panics
// on user-triggered error conditions.
package table

import "errors"

// Every message is prefixed with "table: ..." for consistency and easy
// grepping across logs. Implementations attach context (line numbers,
// offsets, paths) with fmt.Errorf("ctx: %w", ErrX); callers still match
// with errors.Is.
var (
	// ErrFormat indicates malformed table text. Wrapped errors carry the
	// 1-based line number and a short reason.
	ErrFormat = errors.New("table: malformed table text")

	// ErrLayout indicates the x-title is wider than the rendered body and
	// cannot be centered over it.
	ErrLayout = errors.New("table: x-title wider than table body")

	// ErrUnrepresentable indicates a grid the text format cannot express:
	// a 1-column grid's coordinate header would render as a single token,
	// which the grammar reads as a title line. Such grids are valid in
	// memory but refuse Render (and therefore Save).
	ErrUnrepresentable = errors.New("table: 1-column grid cannot be represented in the text format")

	// ErrOutOfRange indicates an x- or y-offset outside the grid
	// dimensions. Public indexers (Get/Set/XVals/YVals) return this, not
	// panic, including for negative offsets.
	ErrOutOfRange = errors.New("table: offset out of range")

	// ErrDimensionMismatch indicates incompatible sizes: a replacement
	// coordinate list whose length differs from the axis, or two grids of
	// different dimensions passed to a diff operation.
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrInvalidArgument indicates bad constructor or query parameters
	// (non-positive sizes, empty or multi-token titles, negative range).
	ErrInvalidArgument = errors.New("table: invalid argument")

	// ErrNotFound indicates the file passed to Load does not exist.
	ErrNotFound = errors.New("table: file not found")

	// ErrNoFileSpecified indicates Save was called with no path on a Grid
	// that has never been loaded from or saved to a file.
	ErrNoFileSpecified = errors.New("table: no file specified")
)
