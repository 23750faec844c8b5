// Package main implements the covplan CLI: coverage-gap planning over
// abstract per-unit coverage records.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/covplan/internal/config"
	"github.com/dkoosis/covplan/internal/logging"
	"github.com/dkoosis/covplan/pkg/render"
)

var (
	flagDebug   bool
	flagNoColor bool
	flagTheme   string

	logger *zap.Logger
	appCfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:           "covplan",
	Short:         "Coverage-gap planning for test-writing worklists",
	Long:          "covplan turns per-unit coverage measurements into a deterministic,\npriority-ordered worklist of coverage gaps for humans, CI gates or agents.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(flagDebug)

		var err error
		appCfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagTheme != "" {
			appCfg.ThemeName = flagTheme
		}
		logger.Debug("configuration loaded",
			zap.String("records", appCfg.RecordsPath),
			zap.String("theme", appCfg.ThemeName))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "rendering theme (default, mono)")
}

// terminal returns the renderer for the current output environment.
// Non-TTY output and NO_COLOR both force the mono theme, the way CI logs
// want it.
func terminal() *render.Terminal {
	width := 80
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	name := appCfg.ThemeName
	if flagNoColor || !isTTY || os.Getenv("NO_COLOR") != "" {
		name = "mono"
	}
	return render.NewTerminal(render.ThemeByName(name), width)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "covplan: %v\n", err)
		os.Exit(1)
	}
}
