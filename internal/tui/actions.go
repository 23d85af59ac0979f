package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/journal"
	"github.com/javiermolinar/cellgrid/internal/nav"
	"github.com/javiermolinar/cellgrid/internal/paste"
	"github.com/javiermolinar/cellgrid/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// focusCell focuses a cell by means other than arrow navigation (tab, enter,
// mouse). The session is notified; it does not call back into the focus sink.
func (m *Model) focusCell(row, col int) tea.Cmd {
	m.session.OnCellFocused(row, col)
	if m.mode != ModeEdit {
		logModeChange(m.mode, ModeEdit, "cell_focused")
		m.mode = ModeEdit
	}
	return m.bindEditor(nav.Cursor{Row: row, Col: col})
}

// bindEditor loads a cell's value into the editor and puts the caret at the end.
func (m *Model) bindEditor(cell nav.Cursor) tea.Cmd {
	m.editCell = cell
	m.lastCell = cell
	m.editor.SetValue(m.session.Value(cell.Row, cell.Col))
	m.editor.CursorEnd()
	m.ensureRowVisible(cell.Row)
	return m.editor.Focus()
}

// blur leaves the grid: the cursor goes back to none.
func (m *Model) blur() {
	m.session.OnBlur()
	m.editor.Blur()
	logModeChange(m.mode, ModeIdle, "blur")
	m.mode = ModeIdle
}

// applyPaste writes a tabular payload anchored at (row, col) and journals it.
func (m *Model) applyPaste(text string, row, col int) tea.Cmd {
	res := m.session.OnPaste(text, row, col)

	m.pasted = make(map[nav.Cursor]bool, res.Applied)
	rows, cols := m.session.Rows(), m.session.Cols()
	for _, u := range res.Updates {
		if u.Row >= 0 && u.Row < rows && u.Col >= 0 && u.Col < cols {
			m.pasted[nav.Cursor{Row: u.Row, Col: u.Col}] = true
		}
	}

	// The anchor is usually the focused cell; refresh the editor from the new grid.
	if m.mode == ModeEdit {
		m.editor.SetValue(m.session.Value(m.editCell.Row, m.editCell.Col))
		m.editor.CursorEnd()
	}

	height, width := paste.Extent(text)
	status := fmt.Sprintf("Pasted %dx%d block at %s: %d cells", height, width, m.cellLabel(nav.Cursor{Row: row, Col: col}), res.Applied)
	if skipped := res.Skipped(); skipped > 0 {
		status += fmt.Sprintf(", %d outside the grid", skipped)
	}

	return tea.Batch(
		m.setStatus(status),
		commands.RecordBatch(m.recorder, journal.KindPaste, res.Updates, res.Applied),
	)
}

// normalizeLineEndings converts terminal paste line breaks to "\n".
// Terminals deliver bracketed paste newlines as "\r" or "\r\n".
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusIsErr = false
	m.statusTime = time.Now().Add(statusDuration)
	return commands.ClearStatusAfter(statusDuration)
}

func (m *Model) setError(err error) tea.Cmd {
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusIsErr = true
	m.statusTime = time.Now().Add(errorDuration)
	return commands.ClearStatusAfter(errorDuration)
}

// cellLabel names a cell by column header and 1-based row, e.g. "Bravo 3".
func (m Model) cellLabel(cell nav.Cursor) string {
	name := fmt.Sprintf("#%d", cell.Col+1)
	if cell.Col >= 0 && cell.Col < len(m.config.Grid.Columns) {
		name = m.config.Grid.Columns[cell.Col]
	}
	return fmt.Sprintf("%s %d", name, cell.Row+1)
}

// ensureRowVisible scrolls the table so row is inside the visible window.
func (m *Model) ensureRowVisible(row int) {
	visible := m.layoutCache.VisibleRows
	if visible <= 0 {
		return
	}
	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+visible {
		m.scrollOffset = row - visible + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxOffset := max(0, m.session.Rows()-m.layoutCache.VisibleRows)
	m.scrollOffset = min(max(0, m.scrollOffset), maxOffset)
}
