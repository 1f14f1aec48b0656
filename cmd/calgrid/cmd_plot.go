package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/plotscript"
	"github.com/calgrid/calgrid/table"
)

var plotFormat string

// plotCmd emits a gnuplot script for a table file on stdout.
var plotCmd = &cobra.Command{
	Use:   "plot FILE [--format persp|fit]",
	Short: "Emit a gnuplot script for a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotFormat, "format", "persp", "script format: persp (3D surface) or fit (scatter + least-squares plane)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	var f plotscript.Format
	switch plotFormat {
	case "persp":
		f = plotscript.Persp
	case "fit":
		f = plotscript.FitScatter
	default:
		return fmt.Errorf("unknown --format %q (want persp or fit)", plotFormat)
	}

	g, err := table.Load(args[0])
	if err != nil {
		return err
	}
	script, err := plotscript.Render(g, f)
	if err != nil {
		return err
	}
	fmt.Print(script)

	return nil
}
