// Package table: whole-file load/save for the text format.
package table

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads the file at path, parses it, and records the path on the
// returned Grid so a later Save("") writes back to the same file. A
// missing file fails with ErrNotFound; malformed contents fail like
// Parse.
// Complexity: O(file size).
func Load(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("table: load %q: %w", path, ErrNotFound)
		}

		return nil, fmt.Errorf("table: load %q: %w", path, err)
	}

	g, err := Parse(string(raw))
	if err != nil {
		return nil, err
	}
	g.lastPath = path

	return g, nil
}

// Save renders g and writes it to path. An empty path reuses the last
// path this instance was loaded from or saved to, failing with
// ErrNoFileSpecified when there is none. The path is remembered on
// success.
// Complexity: O(N·M + file size).
func (g *Grid) Save(path string) error {
	if path == "" {
		if g.lastPath == "" {
			return fmt.Errorf("Grid.Save: %w", ErrNoFileSpecified)
		}
		path = g.lastPath
	}

	text, err := Render(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("table: save %q: %w", path, err)
	}
	g.lastPath = path

	return nil
}
