package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/covplan/internal/history"
	"github.com/dkoosis/covplan/pkg/coverage"
	"github.com/dkoosis/covplan/pkg/plan"
	"github.com/dkoosis/covplan/pkg/policy"
)

var (
	flagFormat     string
	flagOutput     string
	flagFailOnGaps bool
	flagHistory    bool
	flagGlobal     float64
)

var planCmd = &cobra.Command{
	Use:   "plan [records-file]",
	Short: "Compute the coverage-gap worklist from a records file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&flagFormat, "format", "term", "output format (term, json)")
	planCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write worklist JSON to file")
	planCmd.Flags().BoolVar(&flagFailOnGaps, "fail-on-gaps", false, "exit 1 when the worklist is non-empty")
	planCmd.Flags().BoolVar(&flagHistory, "history", false, "record the aggregate in the history store")
	planCmd.Flags().Float64Var(&flagGlobal, "global", -1, "override the global coverage target")
	rootCmd.AddCommand(planCmd)
}

func recordsPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return appCfg.RecordsPath
}

func buildPolicy() (*policy.Policy, error) {
	cfg := policy.Config{Categories: appCfg.Thresholds, Global: appCfg.Global}
	if flagGlobal >= 0 {
		cfg.Global = &flagGlobal
	}
	return policy.New(cfg)
}

func planOnce(path string) (plan.Worklist, *coverage.Model, error) {
	model, err := coverage.ReadFile(path)
	if err != nil {
		return plan.Worklist{}, nil, err
	}
	logger.Debug("records loaded", zap.String("path", path), zap.Int("units", model.Len()))

	pol, err := buildPolicy()
	if err != nil {
		return plan.Worklist{}, nil, err
	}

	worklist, err := plan.New(pol).Plan(model)
	if err != nil {
		return plan.Worklist{}, nil, err
	}
	logger.Debug("plan computed", zap.Int("gaps", len(worklist.Gaps)))
	return worklist, model, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	worklist, model, err := planOnce(recordsPath(args))
	if err != nil {
		return err
	}

	if flagHistory {
		if err := recordRun(cmd.Context(), model, worklist); err != nil {
			return err
		}
	}

	if flagOutput != "" {
		if err := worklist.WriteFile(flagOutput); err != nil {
			return err
		}
	}

	switch flagFormat {
	case "json":
		if err := worklist.Write(os.Stdout); err != nil {
			return err
		}
	case "term":
		fmt.Print(terminal().Render(worklist))
	default:
		return fmt.Errorf("unknown format %q (want term or json)", flagFormat)
	}

	if flagFailOnGaps && !worklist.Empty() {
		// Bare error keeps the message short; cobra already printed output.
		return fmt.Errorf("%d coverage gaps remain", len(worklist.Gaps))
	}
	return nil
}

func recordRun(ctx context.Context, model *coverage.Model, worklist plan.Worklist) error {
	store, err := history.Open(appCfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var total, covered int
	for unit := range model.All() {
		if unit.Excluded() {
			continue
		}
		total += unit.TotalLines
		covered += unit.CoveredLines
	}

	run := history.Run{
		TotalLines:   total,
		CoveredLines: covered,
		GapCount:     len(worklist.Gaps),
		RecordedAt:   time.Now(),
	}
	logger.Debug("recording run",
		zap.Int("total_lines", total),
		zap.Int("covered_lines", covered),
		zap.Int("gaps", run.GapCount))
	return store.Record(ctx, run)
}
