package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calgrid/calgrid/table"
)

//----------------------------------------------------------------------------//
// Diff / Equal Tests
//----------------------------------------------------------------------------//

// TestDiff_SingleCell: two grids identical except one cell report exactly
// that offset pair, and Equal reports a mismatch.
func TestDiff_SingleCell(t *testing.T) {
	a, err := table.Parse(specimen)
	require.NoError(t, err)
	b := a.Clone()
	require.NoError(t, b.Set(2, 1, 99))

	diffs, err := a.Diff(b)
	require.NoError(t, err)
	require.Equal(t, []table.Point{{X: 2, Y: 1}}, diffs)

	same, err := a.Equal(b)
	require.NoError(t, err)
	require.False(t, same)

	// Same set from the other direction.
	back, err := b.Diff(a)
	require.NoError(t, err)
	require.Equal(t, diffs, back)
}

// TestDiff_Identical: no differences is an empty list and a true Equal,
// both with nil errors — never confusable with a failure.
func TestDiff_Identical(t *testing.T) {
	a, err := table.Parse(specimen)
	require.NoError(t, err)
	b := a.Clone()

	diffs, err := a.Diff(b)
	require.NoError(t, err)
	require.Empty(t, diffs)

	same, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, same)
}

// TestDiff_ScanOrder: mismatches come back x outer, y inner, ascending.
func TestDiff_ScanOrder(t *testing.T) {
	a, err := table.New(2, 2, "x", "y")
	require.NoError(t, err)
	b := a.Clone()
	for _, p := range []table.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}} {
		require.NoError(t, b.Set(p.X, p.Y, 7))
	}

	diffs, err := a.Diff(b)
	require.NoError(t, err)
	require.Equal(t, []table.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, diffs)
}

// TestDiff_DimensionMismatch rejects grids of different shapes instead of
// comparing garbage.
func TestDiff_DimensionMismatch(t *testing.T) {
	a, err := table.New(2, 2, "x", "y")
	require.NoError(t, err)
	b, err := table.New(3, 2, "x", "y")
	require.NoError(t, err)

	_, err = a.Diff(b)
	require.ErrorIs(t, err, table.ErrDimensionMismatch)
	_, err = a.Equal(b)
	require.ErrorIs(t, err, table.ErrDimensionMismatch)
}

// TestDiffCoords compares same-offset coordinate values and reports the
// differing offsets; length mismatches fail.
func TestDiffCoords(t *testing.T) {
	a, err := table.New(3, 2, "x", "y")
	require.NoError(t, err)
	require.NoError(t, a.SetXCoords([]float64{1, 2, 3}))
	require.NoError(t, a.SetYCoords([]float64{10, 20}))

	b := a.Clone()
	require.NoError(t, b.SetXCoords([]float64{1, 5, 3}))
	require.NoError(t, b.SetYCoords([]float64{11, 20}))

	xd, err := a.DiffXCoords(b)
	require.NoError(t, err)
	require.Equal(t, []int{1}, xd)

	yd, err := a.DiffYCoords(b)
	require.NoError(t, err)
	require.Equal(t, []int{0}, yd)

	c, err := table.New(2, 2, "x", "y")
	require.NoError(t, err)
	_, err = a.DiffXCoords(c)
	require.ErrorIs(t, err, table.ErrDimensionMismatch)
}

// TestDiff_IgnoresCoordsAndTitles: only cell values participate in Diff.
func TestDiff_IgnoresCoordsAndTitles(t *testing.T) {
	a, err := table.New(2, 2, "x", "y")
	require.NoError(t, err)
	b, err := table.New(2, 2, "other", "axis")
	require.NoError(t, err)
	require.NoError(t, b.SetXCoords([]float64{7, 8}))

	same, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, same)
}
