package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/covplan/pkg/coverage"
	"github.com/dkoosis/covplan/pkg/plan"
)

// Run launches the interactive worklist browser. The model supplies the
// per-unit detail shown for the selected gap; it may be nil, in which
// case only the gap annotations are shown.
func Run(ctx context.Context, w plan.Worklist, cm *coverage.Model) error {
	program := tea.NewProgram(newModel(w, cm), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	worklist plan.Worklist
	coverage *coverage.Model
	styles   Styles

	selected    int
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

func newModel(w plan.Worklist, cm *coverage.Model) model {
	vp := viewport.New(0, 0)
	vp.SetContent("Select a gap to view detail")
	return model{worklist: w, coverage: cm, styles: DefaultStyles(), viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.worklist.Gaps)-1 {
				m.selected++
				m.refreshViewport()
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 4
		m.viewport.Width = m.detailWidth - 4
		m.viewport.Height = msg.Height - 8
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

func (m *model) calculateListWidth() int {
	maxWidth := 24
	for _, g := range m.worklist.Gaps {
		// Gap line: "▶ path -12.3%"
		if n := len(g.Path) + 10; n > maxWidth {
			maxWidth = n
		}
	}
	return maxWidth + 4
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.worklist.Gaps) {
		return
	}
	m.viewport.SetContent(m.detailFor(m.worklist.Gaps[m.selected]))
}

func (m *model) detailFor(g plan.Gap) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "achieved  %.1f%%\n", g.Achieved*100)
	fmt.Fprintf(&sb, "required  %.1f%%\n", g.Required*100)
	fmt.Fprintf(&sb, "deficit   %.1f%%\n\n", g.Deficit*100)
	fmt.Fprintf(&sb, "lines to cover     %d\n", g.RemainingLines)
	fmt.Fprintf(&sb, "branches to cover  %d\n", g.RemainingBranches)

	if g.Summary() || m.coverage == nil {
		return sb.String()
	}
	unit, err := m.coverage.Unit(g.Path)
	if err != nil {
		return sb.String()
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "lines     %d / %d\n", unit.CoveredLines, unit.TotalLines)
	fmt.Fprintf(&sb, "branches  %d / %d\n", unit.CoveredBranches, unit.TotalBranches)
	return sb.String()
}

func (m model) View() string {
	if !m.ready {
		return "Loading worklist..."
	}

	stats := plan.ComputeStats(m.worklist)
	title := m.styles.Title.Render(fmt.Sprintf("covplan · %d gaps", stats.TotalGaps))

	contentHeight := m.height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}

	listPanel := m.styles.ListBox.
		Width(m.listWidth).
		Height(contentHeight).
		Render(m.renderList(contentHeight))

	var detail string
	if m.selected >= 0 && m.selected < len(m.worklist.Gaps) {
		g := m.worklist.Gaps[m.selected]
		header := m.styles.GroupHeader.Render(gapTitle(g))
		detail = header + "\n\n" + m.viewport.View()
	} else {
		detail = "No gaps: all coverage targets met"
	}
	detailPanel := m.styles.DetailBox.
		Width(m.detailWidth).
		Height(contentHeight).
		Render(detail)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.styles.StatusBar.Render("↑/↓ navigate · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

func (m model) renderList(maxLines int) string {
	var lines []string
	lastCategory := coverage.Category("\x00")

	for i, g := range m.worklist.Gaps {
		if g.Category != lastCategory {
			lastCategory = g.Category
			lines = append(lines, m.styles.GroupHeader.Render(categoryHeading(g)))
		}
		entry := fmt.Sprintf("%s -%.1f%%", g.Path, g.Deficit*100)
		if i == m.selected {
			lines = append(lines, m.styles.Selected.Render("▶ "+entry))
		} else {
			lines = append(lines, m.styles.Unselected.Render("  "+entry))
		}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

func gapTitle(g plan.Gap) string {
	if g.Summary() {
		return "Whole codebase"
	}
	return g.Path
}

func categoryHeading(g plan.Gap) string {
	if g.Summary() {
		return "Aggregate"
	}
	return string(g.Category)
}
