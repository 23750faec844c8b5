package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass    string
	Fail    string
	Warn    string
	Info    string
	Summary string
	Bullet  string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Pass:    "✓",
			Fail:    "✗",
			Warn:    "⚠",
			Info:    "●",
			Summary: "Σ",
			Bullet:  "·",
		},
	}
}

// MonoTheme returns an uncolored ASCII theme for CI logs and dumb
// terminals.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Primary: plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Muted:   plain,
		Bold:    plain,
		Icons: ThemeIcons{
			Pass:    "ok",
			Fail:    "x",
			Warn:    "!",
			Info:    "*",
			Summary: "=",
			Bullet:  "-",
		},
	}
}

// ThemeByName resolves a theme name, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
