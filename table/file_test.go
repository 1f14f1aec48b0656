package table_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calgrid/calgrid/table"
)

//----------------------------------------------------------------------------//
// Load / Save Tests
//----------------------------------------------------------------------------//

// TestLoadSave_RoundTrip: Save writes the canonical rendering; Load reads
// it back to an equal grid.
func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.tbl")

	g, err := table.Parse(specimen)
	require.NoError(t, err)
	require.NoError(t, g.Save(path))

	back, err := table.Load(path)
	require.NoError(t, err)
	same, err := g.Equal(back)
	require.NoError(t, err)
	require.True(t, same)
	require.Equal(t, g.XCoords(), back.XCoords())
	require.Equal(t, g.YCoords(), back.YCoords())
}

// TestSave_RemembersPath: after a Load or a pathed Save, Save("") writes
// back to the same file.
func TestSave_RemembersPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.tbl")

	g, err := table.Parse(specimen)
	require.NoError(t, err)
	require.NoError(t, g.Save(path))

	loaded, err := table.Load(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Set(0, 0, 77))
	require.NoError(t, loaded.Save(""))

	back, err := table.Load(path)
	require.NoError(t, err)
	v, err := back.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 77.0, v)
}

// TestSave_NoFileSpecified: a grid with no file history refuses Save("").
// A clone deliberately drops the remembered path, so saving it without an
// explicit path must fail rather than overwrite the source file.
func TestSave_NoFileSpecified(t *testing.T) {
	g, err := table.New(2, 2, "x", "y")
	require.NoError(t, err)
	require.ErrorIs(t, g.Save(""), table.ErrNoFileSpecified)

	path := filepath.Join(t.TempDir(), "map.tbl")
	require.NoError(t, g.Save(path))
	require.ErrorIs(t, g.Clone().Save(""), table.ErrNoFileSpecified)
}

// TestSave_SingleColumnUnrepresentable: Save propagates the renderer's
// refusal of 1-column grids, so no unparseable file is ever written.
func TestSave_SingleColumnUnrepresentable(t *testing.T) {
	g, err := table.New(1, 2, "x", "y")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "map.tbl")
	require.ErrorIs(t, g.Save(path), table.ErrUnrepresentable)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

// TestLoad_NotFound maps a missing file to ErrNotFound.
func TestLoad_NotFound(t *testing.T) {
	_, err := table.Load(filepath.Join(t.TempDir(), "absent.tbl"))
	require.ErrorIs(t, err, table.ErrNotFound)
}

// TestLoad_Malformed propagates parser failures with their line numbers.
func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tbl")
	require.NoError(t, os.WriteFile(path, []byte("[1] [2]\n[10] 1\n"), 0o644))

	_, err := table.Load(path)
	require.ErrorIs(t, err, table.ErrFormat)
}
