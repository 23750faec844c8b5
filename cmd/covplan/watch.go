package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/covplan/internal/watcher"
)

var flagDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [records-file]",
	Short: "Re-plan and re-render whenever the records file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := recordsPath(args)
		return watcher.Watch(cmd.Context(), path, flagDebounce, func() error {
			worklist, _, err := planOnce(path)
			if err != nil {
				// A half-written records file mid-update is expected;
				// report it and keep watching.
				logger.Warn("plan skipped", zap.Error(err))
				fmt.Printf("covplan: %v\n", err)
				return nil
			}
			fmt.Print(terminal().Render(worklist))
			return nil
		})
	},
}

func init() {
	watchCmd.Flags().DurationVar(&flagDebounce, "debounce", watcher.DefaultDebounce, "quiet period before re-planning")
	rootCmd.AddCommand(watchCmd)
}
