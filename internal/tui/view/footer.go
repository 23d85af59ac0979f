package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the status and help lines.
type FooterViewState struct {
	InnerW      int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// RenderFooter renders the status line above the help line.
func RenderFooter(state FooterViewState) string {
	status := footerLine(state.InnerW, state.StatusStyle, state.StatusText)
	help := footerLine(state.InnerW, state.HelpStyle, state.HelpText)
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(0, width-frameW)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
