package client

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to a renderer so that colors are only emitted when the
// output is a terminal.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	help  lipgloss.Style
	box   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Faint(true),
		value: r.NewStyle().Bold(true),
		help:  r.NewStyle().Faint(true),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
