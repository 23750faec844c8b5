// Package render formats worklists as styled terminal output via
// lipgloss. Rendering is presentation only: ordering and content come
// from the planner untouched.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/covplan/pkg/coverage"
	"github.com/dkoosis/covplan/pkg/plan"
)

// Terminal renders worklists as styled terminal output.
type Terminal struct {
	theme Theme
	width int
	title cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, title: cases.Title(language.English)}
}

// Render formats a worklist for terminal display.
func (t *Terminal) Render(w plan.Worklist) string {
	var sb strings.Builder

	t.renderHeader(&sb, w)

	if w.Empty() {
		return sb.String()
	}

	pathWidth := t.pathColumnWidth(w)
	for _, g := range w.Gaps {
		t.renderGap(&sb, g, pathWidth)
	}

	t.renderFooter(&sb, w)
	return sb.String()
}

func (t *Terminal) renderHeader(sb *strings.Builder, w plan.Worklist) {
	if w.Empty() {
		sb.WriteString(t.theme.Success.Render(t.theme.Icons.Pass + " coverage: all targets met"))
		sb.WriteString("\n")
		return
	}

	stats := plan.ComputeStats(w)
	head := fmt.Sprintf("%s coverage: %d gap", t.theme.Icons.Fail, stats.TotalGaps)
	if stats.TotalGaps != 1 {
		head += "s"
	}
	if stats.HasSummary {
		head += " (aggregate below target)"
	}
	sb.WriteString(t.theme.Error.Render(head))
	sb.WriteString("\n")
}

func (t *Terminal) renderGap(sb *strings.Builder, g plan.Gap, pathWidth int) {
	icon := t.theme.Icons.Bullet
	style := t.theme.Warning
	label := t.categoryLabel(g.Category)
	if g.Summary() {
		icon = t.theme.Icons.Summary
		style = t.theme.Error
		label = "Codebase"
	} else if g.Category == coverage.CategoryCoreLogic {
		style = t.theme.Error
	}

	line := fmt.Sprintf("  %s %s  %5.1f%% of %5.1f%%  +%d lines",
		icon, padPath(g.Path, pathWidth), g.Achieved*100, g.Required*100, g.RemainingLines)
	if g.RemainingBranches > 0 {
		line += fmt.Sprintf(" +%d branches", g.RemainingBranches)
	}

	sb.WriteString(style.Render(line))
	sb.WriteString(" ")
	sb.WriteString(t.theme.Muted.Render(label))
	sb.WriteString("\n")
}

func (t *Terminal) renderFooter(sb *strings.Builder, w plan.Worklist) {
	stats := plan.ComputeStats(w)
	if stats.UnitGaps == 0 {
		return
	}
	footer := fmt.Sprintf("  worst deficit %.1f%% across %d unit", stats.WorstDeficit*100, stats.UnitGaps)
	if stats.UnitGaps != 1 {
		footer += "s"
	}
	sb.WriteString(t.theme.Muted.Render(footer))
	sb.WriteString("\n")
}

// RenderTrend formats historical aggregate percentages as a sparkline.
func (t *Terminal) RenderTrend(percentages []int) string {
	if len(percentages) == 0 {
		return ""
	}
	spark := buildSparkline(percentages, t.width/2)
	first := percentages[0]
	last := percentages[len(percentages)-1]

	style := t.theme.Muted
	if last > first {
		style = t.theme.Success // coverage rising
	} else if last < first {
		style = t.theme.Warning
	}
	return style.Render(fmt.Sprintf("trend: %s [%d%% -> %d%%]", spark, first, last)) + "\n"
}

func (t *Terminal) categoryLabel(cat coverage.Category) string {
	if cat == "" {
		return ""
	}
	return t.title.String(strings.ReplaceAll(string(cat), "-", " "))
}

func (t *Terminal) pathColumnWidth(w plan.Worklist) int {
	maxWidth := 0
	for _, g := range w.Gaps {
		if pw := runewidth.StringWidth(g.Path); pw > maxWidth {
			maxWidth = pw
		}
	}
	// Leave room for the ratio and remaining columns.
	if limit := t.width - 40; maxWidth > limit && limit > 10 {
		maxWidth = limit
	}
	return maxWidth
}

func padPath(path string, width int) string {
	pw := runewidth.StringWidth(path)
	if pw >= width {
		return runewidth.Truncate(path, width, "…")
	}
	return path + strings.Repeat(" ", width-pw)
}

// buildSparkline scales values onto eight block levels, sampling down to
// targetWidth when the series is longer.
func buildSparkline(data []int, targetWidth int) string {
	if len(data) == 0 {
		return ""
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	display := data
	if targetWidth > 0 && len(data) > targetWidth {
		display = sampleData(data, targetWidth)
	}

	if maxVal == minVal {
		return strings.Repeat(string(chars[3]), len(display))
	}

	var result strings.Builder
	valRange := float64(maxVal - minVal)
	for _, v := range display {
		scaled := int(float64(v-minVal) / valRange * 7)
		if scaled > 7 {
			scaled = 7
		}
		if scaled < 0 {
			scaled = 0
		}
		result.WriteRune(chars[scaled])
	}
	return result.String()
}

func sampleData(data []int, targetLen int) []int {
	if len(data) <= targetLen || targetLen < 2 {
		return data
	}

	result := make([]int, targetLen)
	step := float64(len(data)-1) / float64(targetLen-1)
	for i := 0; i < targetLen; i++ {
		idx := int(float64(i) * step)
		if idx >= len(data) {
			idx = len(data) - 1
		}
		result[i] = data[idx]
	}
	return result
}
