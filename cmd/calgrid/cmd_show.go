package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/table"
)

// showCmd parses a table file and prints its canonical rendering.
var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Parse a table file and print its canonical rendering",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := table.Load(args[0])
	if err != nil {
		return err
	}
	text, err := table.Render(g)
	if err != nil {
		return err
	}
	fmt.Print(text)

	return nil
}
