package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/grid"
	"github.com/javiermolinar/cellgrid/internal/journal"
	"github.com/javiermolinar/cellgrid/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logKey(msg, m.mode)

	// Global keys (work in all modes)
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	default:
		return m.handleIdleKeys(msg)
	}
}

// handleIdleKeys handles keys while no cell is focused.
func (m Model) handleIdleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		return m, m.setStatus("Focus a cell before pasting")
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
		return m, nil
	case key.Matches(msg, m.keys.Diagnostics):
		m.toggleDiagnostics()
		return m, nil
	case key.Matches(msg, m.keys.NextCell, m.keys.PrevCell, m.keys.Enter):
		return m, m.focusCell(m.lastCell.Row, m.lastCell.Col)
	case key.Matches(msg, m.keys.Paste):
		return m, m.setStatus("Focus a cell before pasting")
	}

	// Arrow keys with no selection are not handled; nothing moves.
	m.session.OnKeyPressed(msg.String())
	return m, nil
}

// handleEditKeys handles keys while a cell is focused.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cell := m.editCell

	if msg.Paste {
		return m, m.applyPaste(normalizeLineEndings(string(msg.Runes)), cell.Row, cell.Col)
	}

	rows, cols := m.session.Rows(), m.session.Cols()

	switch {
	case key.Matches(msg, m.keys.Blur):
		m.blur()
		return m, nil
	case msg.String() == "f1":
		m.openHelp()
		return m, nil
	case key.Matches(msg, m.keys.Diagnostics):
		m.toggleDiagnostics()
		return m, nil
	case key.Matches(msg, m.keys.NextCell):
		next := nextCell(cell.Row, cell.Col, rows, cols)
		return m, m.focusCell(next.Row, next.Col)
	case key.Matches(msg, m.keys.PrevCell):
		prev := prevCell(cell.Row, cell.Col, rows, cols)
		return m, m.focusCell(prev.Row, prev.Col)
	case key.Matches(msg, m.keys.Enter):
		return m, m.focusCell(min(rows-1, cell.Row+1), cell.Col)
	case key.Matches(msg, m.keys.Paste):
		return m, commands.ReadClipboard(cell.Row, cell.Col)
	case key.Matches(msg, m.keys.CopyCell):
		return m, commands.CopyToClipboard(m.session.Value(cell.Row, cell.Col), m.cellLabel(cell))
	}

	// Directional keys belong to the navigation controller and are consumed.
	res := m.session.OnKeyPressed(msg.String())
	if res.Handled {
		return m, m.syncFocus()
	}

	return m, m.editFocusedCell(msg)
}

// handleHelpKeys closes the help overlay on any of its dismiss keys.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help, m.keys.Blur, m.keys.Quit):
		logModeChange(m.mode, m.prevMode, "help_closed")
		m.mode = m.prevMode
		m.help.ShowAll = false
	}
	return m, nil
}

// editFocusedCell forwards a key to the editor and reports any value change.
func (m *Model) editFocusedCell(msg tea.KeyMsg) tea.Cmd {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	after := m.editor.Value()
	if after == before {
		return cmd
	}

	cell := m.editCell
	if !m.session.OnCellEdited(cell.Row, cell.Col, after) {
		return cmd
	}
	delete(m.pasted, cell)

	update := []grid.CellUpdate{{Row: cell.Row, Col: cell.Col, Value: after}}
	return tea.Batch(cmd, commands.RecordBatch(m.recorder, journal.KindEdit, update, 1))
}

// syncFocus moves the editor to a cell the session asked to focus.
func (m *Model) syncFocus() tea.Cmd {
	cell, ok := m.focus.take()
	if !ok {
		return nil
	}
	return m.bindEditor(cell)
}

func (m *Model) openHelp() {
	logModeChange(m.mode, ModeHelp, "help_opened")
	m.prevMode = m.mode
	m.mode = ModeHelp
	m.help.ShowAll = true
}

func (m *Model) toggleDiagnostics() {
	m.showDiags = !m.showDiags
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.ensureRowVisible(m.editCell.Row)
}

