package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/covplan/pkg/plan"
)

var renderCmd = &cobra.Command{
	Use:   "render <worklist-file>",
	Short: "Render a previously computed worklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		worklist, err := plan.ReadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Print(terminal().Render(worklist))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
