package table_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calgrid/calgrid/table"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// specimen is a hand-authored 3×2 table with both axis titles.
const specimen = `
        x

     [1.25]  [3.35]  [4.97]
rpm  [100]   1       2       3
     [200]   4       5       6
`

// TestParse_Specimen verifies dimensions, coordinates, titles, and the
// bottom-up row orientation: offset 0 is the bottom displayed row, so the
// [200] row (listed last) is row 0.
func TestParse_Specimen(t *testing.T) {
	g, err := table.Parse(specimen)
	require.NoError(t, err)

	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, "x", g.XTitle())
	require.Equal(t, "rpm", g.YTitle())
	require.Equal(t, []float64{1.25, 3.35, 4.97}, g.XCoords())
	require.Equal(t, []float64{200, 100}, g.YCoords())

	bottom, err := g.XVals(0)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, bottom)
	top, err := g.XVals(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, top)
}

// TestParse_NoTitles accepts a bare coordinate grid without title lines.
func TestParse_NoTitles(t *testing.T) {
	g, err := table.Parse("[1] [2]\n[10] 3 4\n")
	require.NoError(t, err)
	require.Equal(t, "", g.XTitle())
	require.Equal(t, "", g.YTitle())
	require.Equal(t, 2, g.Width())
	require.Equal(t, 1, g.Height())
}

// TestParse_IgnoresBlankAndWordlessLines checks that blank lines and
// lines whose tokens carry no word character (e.g. rulers) are skipped.
func TestParse_IgnoresBlankAndWordlessLines(t *testing.T) {
	g, err := table.Parse("\n x \n ----- \n[1] [2]\n\n[10] 3 4\n - -- [ ]\n")
	require.NoError(t, err)
	require.Equal(t, "x", g.XTitle())
	require.Equal(t, 2, g.Width())
	require.Equal(t, 1, g.Height())
}

// TestParse_Errors walks the malformed-input classes. Every failure is
// ErrFormat and carries the offending line number.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		line string // expected "line N" fragment in the message
	}{
		{"MultipleXTitles", "x\ny\n[1] [2]\n[10] 1 2\n", "line 2"},
		{"MultipleYTitles", "[1] [2]\nrpm [10] 1 2\nload [20] 3 4\n", "line 3"},
		{"StrayTokenAfterHeader", "[1] [2]\nrpm\n", "line 2"},
		{"BadHeaderToken", "x\n[1] 2.5\n", "line 2"},
		{"ShortRow", "[1] [2] [3]\n[10] 1 2\n", "line 2"},
		{"LongRow", "[1] [2]\n[10] 1 2 3 4\n", "line 2"},
		{"UnbracketedYCoord", "[1] [2] [3]\n100 1 2 3\n", "line 2"},
		{"NonNumericValue", "[1] [2]\n[10] 1 two\n", "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.Parse(tc.text)
			if !errors.Is(err, table.ErrFormat) {
				t.Fatalf("Parse(%q) error = %v; want ErrFormat", tc.text, err)
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Errorf("Parse(%q) error = %v; want mention of %q", tc.text, err, tc.line)
			}
		})
	}
}

// TestParse_Incomplete rejects inputs that cannot yield a valid grid.
func TestParse_Incomplete(t *testing.T) {
	for _, text := range []string{"", "x\n", "x\n[1] [2]\n"} {
		_, err := table.Parse(text)
		if !errors.Is(err, table.ErrFormat) {
			t.Errorf("Parse(%q) error = %v; want ErrFormat", text, err)
		}
	}
}
