// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/grid"
)

// Clipboard access, replaced in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// recordTimeout bounds a single journal write.
const recordTimeout = 5 * time.Second

// BatchRecorder stores applied update lists for diagnostics.
type BatchRecorder interface {
	RecordBatch(ctx context.Context, kind string, updates []grid.CellUpdate, applied int) error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ClipboardMsg carries text read from the system clipboard.
// Row and Col are the cell that was focused when the paste was requested.
type ClipboardMsg struct {
	Text string
	Row  int
	Col  int
}

// BatchRecordedMsg is sent after a journal write succeeds.
type BatchRecordedMsg struct {
	Kind    string
	Updates int
}

// ReadClipboard reads the system clipboard for a paste anchored at (row, col).
func ReadClipboard(row, col int) tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("reading clipboard: %w", err)}
		}
		return ClipboardMsg{Text: text, Row: row, Col: col}
	}
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text, label string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("writing clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: fmt.Sprintf("Copied %s", label)}
	}
}

// RecordBatch journals an applied update list. A nil recorder is a no-op.
func RecordBatch(rec BatchRecorder, kind string, updates []grid.CellUpdate, applied int) tea.Cmd {
	if rec == nil || len(updates) == 0 {
		return nil
	}
	// The caller may keep mutating its slice; journal a private copy.
	batch := make([]grid.CellUpdate, len(updates))
	copy(batch, updates)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := rec.RecordBatch(ctx, kind, batch, applied); err != nil {
			return ErrMsg{Err: fmt.Errorf("journaling %s: %w", kind, err)}
		}
		return BatchRecordedMsg{Kind: kind, Updates: len(batch)}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
