package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/nav"
)

// handleMouseMsg focuses clicked cells and scrolls on the wheel.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollOffset--
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollOffset++
		m.clampScroll()
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		cell, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		return m, m.focusCell(cell.Row, cell.Col)
	}
	return m, nil
}

// cellAt maps a screen position to a grid cell. The table layout is
// "│" + row number + "│" + cell + "│" + cell ... with the header above.
func (m Model) cellAt(x, y int) (nav.Cursor, bool) {
	layout := m.layoutCache
	firstRowY := titleHeight + tableHeaderLines
	if y < firstRowY || y >= firstRowY+layout.VisibleRows {
		return nav.Cursor{}, false
	}
	row := m.scrollOffset + (y - firstRowY)

	firstCellX := 1 + layout.RowNumW + 1
	if x < firstCellX {
		return nav.Cursor{}, false
	}
	stride := layout.CellW + 1
	rel := x - firstCellX
	if rel%stride == layout.CellW {
		// Column border
		return nav.Cursor{}, false
	}
	col := rel / stride
	if row >= m.session.Rows() || col >= m.session.Cols() {
		return nav.Cursor{}, false
	}
	return nav.Cursor{Row: row, Col: col}, true
}
