package output

import "github.com/charmbracelet/lipgloss"

// ESLint palette.
var (
	ColorPrimary = lipgloss.Color("#4B32C3") // eslint purple
	ColorAccent  = lipgloss.Color("#8080F2")
	ColorSuccess = lipgloss.Color("#2EA043")
	ColorWarning = lipgloss.Color("#D29922")
	ColorError   = lipgloss.Color("#E5534B")
	ColorMuted   = lipgloss.Color("#768390")
)

// Styles are the lipgloss styles used across the CLI. They are only applied
// when color output is enabled.
var Styles = struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Foreground(ColorAccent).Faint(true),
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Key:     lipgloss.NewStyle().Foreground(ColorAccent),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2),
}

func paint(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(text)
}
