package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all console output.
const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorHighlight = lipgloss.Color("#3B82F6")
)

// styles holds lipgloss styles bound to one output. Colors are dropped
// automatically when the output is not a terminal.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	command lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess),
		err:     r.NewStyle().Bold(true).Foreground(colorError),
		warning: r.NewStyle().Foreground(colorWarning),
		command: r.NewStyle().Foreground(colorHighlight),
	}
}
