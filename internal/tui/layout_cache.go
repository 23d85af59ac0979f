package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleHeight  = 1
	footerHeight = 2

	// Table chrome: top border, header, header separator, bottom border.
	tableChromeLines = 4
	// Lines above the first data row: top border, header, header separator.
	tableHeaderLines = 3

	// The diagnostics panel needs room for its border, a title and one body line.
	diagMinHeight = 4
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	GridH       int
	DiagH       int
	VisibleRows int // Data rows that fit in the table

	CellW   int
	RowNumW int

	TitleStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	DiagStyle   lipgloss.Style
}

func rowNumberWidth(rows int) int {
	return len(strconv.Itoa(rows)) + 2
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	rows := m.session.Rows()
	body := max(0, innerH-titleHeight-footerHeight)

	diagH := 0
	if m.showDiags {
		// Border plus title plus one line per grid row.
		want := rows + 3
		diagH = min(want, body/2)
		if diagH < diagMinHeight {
			diagH = 0
		}
	}

	gridH := body - diagH
	visible := min(rows, max(0, gridH-tableChromeLines))

	footerStyle := lipgloss.NewStyle().Width(innerW).Background(styles.colorBg)

	// lipgloss widths include padding but not borders.
	diagStyle := styles.DiagBoxStyle.
		Width(max(0, innerW-styles.DiagBoxStyle.GetHorizontalBorderSize())).
		Height(max(0, diagH-styles.DiagBoxStyle.GetVerticalBorderSize()))

	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		GridH:       gridH,
		DiagH:       diagH,
		VisibleRows: visible,
		CellW:       m.cellWidth,
		RowNumW:     rowNumberWidth(rows),
		TitleStyle:  styles.TitleInfoStyle.Width(innerW),
		StatusStyle: styles.StatusStyle.Inherit(footerStyle),
		ErrorStyle:  styles.StatusErrorStyle.Inherit(footerStyle),
		HelpStyle:   styles.HelpStyle.Inherit(footerStyle),
		DiagStyle:   diagStyle,
	}
}
