package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		if m.mode == ModeEdit {
			m.ensureRowVisible(m.editCell.Row)
		} else {
			m.clampScroll()
		}
		return m, nil

	case commands.ClipboardMsg:
		return m, m.applyPaste(msg.Text, msg.Row, msg.Col)

	case commands.BatchRecordedMsg:
		debugLog.Log("BATCH_WRITE", map[string]any{
			"kind":    msg.Kind,
			"updates": msg.Updates,
		})
		return m, nil

	case commands.ErrMsg:
		logError("command", msg.Err)
		return m, m.setError(msg.Err)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other component messages
	if m.mode == ModeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}
