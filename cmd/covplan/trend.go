package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/covplan/internal/history"
)

var flagTrendRuns int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the aggregate coverage trend from recorded runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(appCfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()

		trend, err := store.Trend(cmd.Context(), flagTrendRuns)
		if err != nil {
			return err
		}
		if len(trend) == 0 {
			fmt.Println("no recorded runs (use `covplan plan --history`)")
			return nil
		}
		fmt.Print(terminal().RenderTrend(trend))
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVar(&flagTrendRuns, "runs", 30, "number of recent runs to include")
	rootCmd.AddCommand(trendCmd)
}
