package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderLabels builds the table header: an empty row-number column, then the
// configured column names.
func HeaderLabels(columns []string) []string {
	labels := make([]string, 0, len(columns)+1)
	labels = append(labels, "")
	return append(labels, columns...)
}

// TitleViewState holds the title bar content.
type TitleViewState struct {
	InnerW     int
	Title      string
	Info       string
	TitleStyle lipgloss.Style
	InfoStyle  lipgloss.Style
}

// RenderTitle renders the title on the left and info right-aligned.
func RenderTitle(state TitleViewState) string {
	if state.InnerW <= 0 {
		return ""
	}
	title := state.TitleStyle.Render(state.Title)
	titleW := lipgloss.Width(title)
	if titleW >= state.InnerW {
		return ansi.Truncate(title, state.InnerW, "")
	}

	infoW := state.InnerW - titleW
	info := ansi.Truncate(state.Info, max(0, infoW-1), Ellipsis)
	gap := max(0, infoW-lipgloss.Width(info))
	return title + state.InfoStyle.Render(strings.Repeat(" ", gap)+info)
}
