package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/metcalfc/skim/internal/display"
)

var (
	orpStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D0D0D0"))

	readStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E6E6E"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F0F0F0"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4D4F")).
			Padding(0, 1)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

var selectedOptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

// chunkStyle renders the words of the current chunk for a highlight style.
func chunkStyle(h display.HighlightStyle) lipgloss.Style {
	c := h.Colors()
	s := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Foreground))
	if c.Background != "" {
		s = s.Background(lipgloss.Color(c.Background))
	}
	return s
}

// columnFraction maps the font size to the share of the terminal width used
// by the passage. Larger text means fewer words per line.
func columnFraction(s display.FontSize) float64 {
	switch s {
	case display.SizeSmall:
		return 0.85
	case display.SizeLarge:
		return 0.60
	case display.SizeXLarge:
		return 0.50
	default:
		return 0.70
	}
}
