package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/config"
	"github.com/javiermolinar/cellgrid/internal/grid"
)

type fakeRecorder struct {
	mu      sync.Mutex
	kinds   []string
	batches [][]grid.CellUpdate
}

func (f *fakeRecorder) RecordBatch(_ context.Context, kind string, updates []grid.CellUpdate, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds = append(f.kinds, kind)
	f.batches = append(f.batches, updates)
	return nil
}

func (f *fakeRecorder) snapshot() ([]string, [][]grid.CellUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.kinds...), append([][]grid.CellUpdate(nil), f.batches...)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.ShowDiagnostics = false
	return cfg
}

func newTestModel(t *testing.T, cfg *config.Config, opts ...ModelOption) Model {
	t.Helper()
	m, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return send(t, *m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := sendCmd(t, m, msg)
	return updated
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pasteMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

// execCmd runs cmd and any batched commands, collecting the messages that
// arrive within a short timeout. Ticks never fire in time and are dropped.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
