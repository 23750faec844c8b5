package main

import (
	"github.com/spf13/cobra"

	"github.com/dkoosis/covplan/pkg/dashboard"
)

var dashCmd = &cobra.Command{
	Use:   "dash [records-file]",
	Short: "Browse the worklist interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		worklist, model, err := planOnce(recordsPath(args))
		if err != nil {
			return err
		}
		return dashboard.Run(cmd.Context(), worklist, model)
	},
}

func init() {
	dashCmd.Flags().Float64Var(&flagGlobal, "global", -1, "override the global coverage target")
	rootCmd.AddCommand(dashCmd)
}
