package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const diagGap = 2

// DiagnosticsViewState holds the diagnostics panel content: the last applied
// update list on the left and the grid dump on the right.
type DiagnosticsViewState struct {
	InnerW      int
	Height      int
	UpdateLines []string
	GridLines   []string
	BoxStyle    lipgloss.Style // Sized to InnerW x Height by the caller
	TitleStyle  lipgloss.Style
	BodyStyle   lipgloss.Style
}

// RenderDiagnostics renders the diagnostics panel, or "" when it has no room.
func RenderDiagnostics(state DiagnosticsViewState) string {
	if state.Height <= 0 || state.InnerW <= 0 {
		return ""
	}
	frameW, frameH := state.BoxStyle.GetFrameSize()
	contentW := state.InnerW - frameW
	bodyH := state.Height - frameH - 1 // title line
	if contentW <= diagGap || bodyH <= 0 {
		return ""
	}

	leftW := (contentW - diagGap) / 2
	rightW := contentW - diagGap - leftW

	updatesTitle := fmt.Sprintf("Last paste (%d updates)", len(state.UpdateLines))
	left := diagColumn(updatesTitle, state.UpdateLines, leftW, bodyH, state)
	right := diagColumn("Grid", state.GridLines, rightW, bodyH, state)
	gap := state.BodyStyle.Render(strings.Repeat(" ", diagGap))

	lines := make([]string, len(left))
	for i := range left {
		lines[i] = left[i] + gap + right[i]
	}
	return state.BoxStyle.Render(strings.Join(lines, "\n"))
}

// diagColumn renders a titled column of exactly bodyH+1 lines, each width wide.
// Lines that do not fit collapse into a "… N more" marker.
func diagColumn(title string, body []string, width, bodyH int, state DiagnosticsViewState) []string {
	titleStyle := state.TitleStyle.Width(width)
	bodyStyle := state.BodyStyle.Width(width)

	out := make([]string, 0, bodyH+1)
	out = append(out, titleStyle.Render(ansi.Truncate(title, width, Ellipsis)))

	shown := body
	hidden := 0
	if len(body) > bodyH {
		shown = body[:bodyH-1]
		hidden = len(body) - len(shown)
	}
	for _, line := range shown {
		out = append(out, bodyStyle.Render(ansi.Truncate(SanitizeCell(line), width, Ellipsis)))
	}
	if hidden > 0 {
		out = append(out, bodyStyle.Render(fmt.Sprintf("%s %d more", Ellipsis, hidden)))
	}
	for len(out) < bodyH+1 {
		out = append(out, bodyStyle.Render(""))
	}
	return out
}
