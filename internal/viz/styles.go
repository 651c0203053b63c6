package viz

import "github.com/charmbracelet/lipgloss"

// Frames are plain text, so styles only lay things out.
var (
	frameStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			Padding(1, 2).
			Width(40)
	labelStyle = lipgloss.NewStyle().Width(12)
	helpStyle  = lipgloss.NewStyle().MarginTop(1).PaddingLeft(2)
)
