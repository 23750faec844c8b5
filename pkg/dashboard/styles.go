// Package dashboard provides an interactive terminal browser for a
// worklist: gap list on the left, unit detail on the right.
package dashboard

import "github.com/charmbracelet/lipgloss"

// Styles holds the compiled lipgloss styles for the browser.
type Styles struct {
	Title       lipgloss.Style
	ListBox     lipgloss.Style
	DetailBox   lipgloss.Style
	GroupHeader lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Deficit     lipgloss.Style
	StatusBar   lipgloss.Style
}

// DefaultStyles returns the standard browser styles.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		ListBox: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		DetailBox: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		GroupHeader: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("39")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Deficit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
	}
}
