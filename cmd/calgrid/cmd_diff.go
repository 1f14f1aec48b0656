package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calgrid/calgrid/table"
)

// errTablesDiffer drives the non-zero exit status without a usage dump.
var errTablesDiffer = errors.New("tables differ")

// diffCmd compares two table files cell-by-cell and by coordinates.
var diffCmd = &cobra.Command{
	Use:   "diff A B",
	Short: "Compare two table files; exit 1 when they differ",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := table.Load(args[0])
	if err != nil {
		return err
	}
	b, err := table.Load(args[1])
	if err != nil {
		return err
	}

	cells, err := a.Diff(b)
	if err != nil {
		return err
	}
	xDiffs, err := a.DiffXCoords(b)
	if err != nil {
		return err
	}
	yDiffs, err := a.DiffYCoords(b)
	if err != nil {
		return err
	}

	for _, p := range cells {
		av, _ := a.Get(p.X, p.Y)
		bv, _ := b.Get(p.X, p.Y)
		fmt.Printf("cell (%d,%d): %g != %g\n", p.X, p.Y, av, bv)
	}
	for _, x := range xDiffs {
		fmt.Printf("x-coordinate %d differs\n", x)
	}
	for _, y := range yDiffs {
		fmt.Printf("y-coordinate %d differs\n", y)
	}

	if len(cells)+len(xDiffs)+len(yDiffs) > 0 {
		logger.Info("tables differ",
			zap.Int("cells", len(cells)),
			zap.Int("x_coords", len(xDiffs)),
			zap.Int("y_coords", len(yDiffs)))

		return errTablesDiffer
	}

	return nil
}
