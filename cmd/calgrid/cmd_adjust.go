package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calgrid/calgrid/table"
)

var (
	adjustX     float64
	adjustY     float64
	adjustRange int
	adjustDelta float64
	adjustOut   string
)

// adjustCmd batch-edits the neighborhood of cells around an operating
// point, e.g. "nudge every cell near 2000 RPM / 85 kPa by +2".
var adjustCmd = &cobra.Command{
	Use:   "adjust FILE --x X --y Y --delta D [--range R] [-o OUT]",
	Short: "Add a delta to every cell near an operating point",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdjust,
}

func init() {
	adjustCmd.Flags().Float64Var(&adjustX, "x", 0, "x-axis operating point (e.g. RPM)")
	adjustCmd.Flags().Float64Var(&adjustY, "y", 0, "y-axis operating point (e.g. load)")
	adjustCmd.Flags().IntVar(&adjustRange, "range", 0, "neighborhood radius in offsets")
	adjustCmd.Flags().Float64Var(&adjustDelta, "delta", 0, "value added to every selected cell")
	adjustCmd.Flags().StringVarP(&adjustOut, "out", "o", "", "output file (default: overwrite FILE)")
	_ = adjustCmd.MarkFlagRequired("x")
	_ = adjustCmd.MarkFlagRequired("y")
	_ = adjustCmd.MarkFlagRequired("delta")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	g, err := table.Load(args[0])
	if err != nil {
		return err
	}

	points, err := g.LookupPoints(adjustX, adjustY, adjustRange)
	if err != nil {
		return err
	}
	for _, p := range points {
		v, err := g.Get(p.X, p.Y)
		if err != nil {
			return err
		}
		if err := g.Set(p.X, p.Y, v+adjustDelta); err != nil {
			return err
		}
	}

	if err := g.Save(adjustOut); err != nil {
		return err
	}
	logger.Info("adjusted table",
		zap.String("file", args[0]),
		zap.Int("cells", len(points)),
		zap.Float64("delta", adjustDelta))

	return nil
}
