package policy

import (
	"errors"
	"testing"

	"github.com/dkoosis/covplan/pkg/coverage"
)

func TestNew_DefaultTable(t *testing.T) {
	p := Default()

	tests := []struct {
		cat  coverage.Category
		want float64
	}{
		{coverage.CategoryCoreLogic, 0.95},
		{coverage.CategoryErrorHandling, 0.90},
		{coverage.CategoryEdgeCase, 0.90},
		{coverage.CategoryDefensive, 0.85},
		{coverage.Category("made-up"), 0.90}, // unknown falls back to global
	}

	for _, tt := range tests {
		if got := p.RequiredRatio(tt.cat); got != tt.want {
			t.Errorf("RequiredRatio(%q) = %v, want %v", tt.cat, got, tt.want)
		}
	}

	if got := p.GlobalRatio(); got != 0.90 {
		t.Errorf("GlobalRatio() = %v, want 0.90", got)
	}
}

func TestNew_OverridesAndValidation(t *testing.T) {
	global := 0.80
	p, err := New(Config{
		Categories: map[coverage.Category]float64{
			coverage.CategoryCoreLogic: 1.0,
			"integration":              0.70,
		},
		Global: &global,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := p.RequiredRatio(coverage.CategoryCoreLogic); got != 1.0 {
		t.Errorf("RequiredRatio(core-logic) = %v, want 1.0", got)
	}
	if got := p.RequiredRatio("integration"); got != 0.70 {
		t.Errorf("RequiredRatio(integration) = %v, want 0.70", got)
	}
	// Unconfigured known category keeps its default.
	if got := p.RequiredRatio(coverage.CategoryDefensive); got != 0.85 {
		t.Errorf("RequiredRatio(defensive) = %v, want 0.85", got)
	}
	if got := p.GlobalRatio(); got != 0.80 {
		t.Errorf("GlobalRatio() = %v, want 0.80", got)
	}
}

func TestNew_RejectsOutOfRangeRatios(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "category above one",
			cfg: Config{Categories: map[coverage.Category]float64{
				coverage.CategoryCoreLogic: 1.5,
			}},
		},
		{
			name: "category below zero",
			cfg: Config{Categories: map[coverage.Category]float64{
				coverage.CategoryEdgeCase: -0.1,
			}},
		},
		{
			name: "global above one",
			cfg: Config{Global: func() *float64 { v := 2.0; return &v }()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg)
			if err == nil {
				t.Fatal("New() expected error, got nil")
			}
			var invalid *InvalidThresholdError
			if !errors.As(err, &invalid) {
				t.Fatalf("New() error type = %T, want *InvalidThresholdError", err)
			}
			if p != nil {
				t.Error("New() returned a policy alongside an error")
			}
		})
	}
}

func TestRank_OrdersCategories(t *testing.T) {
	if !(Rank(coverage.CategoryCoreLogic) < Rank(coverage.CategoryErrorHandling)) {
		t.Error("core-logic should rank before error-handling")
	}
	if !(Rank(coverage.CategoryErrorHandling) < Rank(coverage.CategoryEdgeCase)) {
		t.Error("error-handling should rank before edge-case")
	}
	if !(Rank(coverage.CategoryEdgeCase) < Rank(coverage.CategoryDefensive)) {
		t.Error("edge-case should rank before defensive")
	}
	if Rank("unknown") != Rank(coverage.CategoryDefensive) {
		t.Error("unknown categories should rank with defensive")
	}
}

func TestValid_ZeroPolicy(t *testing.T) {
	var zero Policy
	if zero.Valid() {
		t.Error("zero Policy must not be valid")
	}
	if !Default().Valid() {
		t.Error("constructed Policy must be valid")
	}
}
