package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/grid"
	"github.com/javiermolinar/cellgrid/internal/journal"
	"github.com/javiermolinar/cellgrid/internal/nav"
	"github.com/javiermolinar/cellgrid/internal/tui/commands"
)

func TestArrowKeysWithoutSelection(t *testing.T) {
	m := newTestModel(t, testConfig())

	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight} {
		m = send(t, m, keyMsg(k))
	}

	if m.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle", m.Mode())
	}
	if _, ok := m.Session().Cursor(); ok {
		t.Error("arrow keys must not create a selection")
	}
}

func TestTabFocusesFirstCell(t *testing.T) {
	m := newTestModel(t, testConfig())
	m.Session().OnCellEdited(0, 0, "seed")

	m = send(t, m, keyMsg(tea.KeyTab))

	if m.Mode() != ModeEdit {
		t.Fatalf("mode = %v, want edit", m.Mode())
	}
	cur, ok := m.Session().Cursor()
	if !ok || cur != (nav.Cursor{}) {
		t.Fatalf("cursor = %v, %v; want {0 0}", cur, ok)
	}
	if got := m.editor.Value(); got != "seed" {
		t.Errorf("editor value = %q, want seed", got)
	}
}

func TestArrowNavigationMovesEditor(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))
	m.Session().OnCellEdited(1, 1, "target")

	tests := []struct {
		name string
		key  tea.KeyType
		want nav.Cursor
	}{
		{name: "clamped_up", key: tea.KeyUp, want: nav.Cursor{Row: 0, Col: 0}},
		{name: "clamped_left", key: tea.KeyLeft, want: nav.Cursor{Row: 0, Col: 0}},
		{name: "down", key: tea.KeyDown, want: nav.Cursor{Row: 1, Col: 0}},
		{name: "right", key: tea.KeyRight, want: nav.Cursor{Row: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m = send(t, m, keyMsg(tt.key))
			cur, _ := m.Session().Cursor()
			if cur != tt.want {
				t.Fatalf("session cursor = %v, want %v", cur, tt.want)
			}
			if m.editCell != tt.want {
				t.Fatalf("editor cell = %v, want %v", m.editCell, tt.want)
			}
		})
	}

	if got := m.editor.Value(); got != "target" {
		t.Errorf("editor value = %q, want target", got)
	}
}

func TestTypingEditsFocusedCell(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, testConfig(), WithRecorder(rec))
	m = send(t, m, keyMsg(tea.KeyTab))
	m = send(t, m, keyMsg(tea.KeyRight))

	var cmd tea.Cmd
	for _, r := range "q?x" {
		m, cmd = sendCmd(t, m, runes(string(r)))
		execCmd(cmd)
	}

	if got := m.Session().Value(0, 1); got != "q?x" {
		t.Fatalf("cell (0,1) = %q, want %q", got, "q?x")
	}
	if m.Mode() != ModeEdit {
		t.Errorf("typing q or ? while editing must not quit or open help, mode = %v", m.Mode())
	}
	if m.Session().LastUpdates() != nil {
		t.Error("edits must not replace the last update list")
	}

	kinds, batches := rec.snapshot()
	if len(kinds) != 3 || kinds[2] != journal.KindEdit {
		t.Fatalf("journaled kinds = %v, want three edits", kinds)
	}
	want := []grid.CellUpdate{{Row: 0, Col: 1, Value: "q?x"}}
	if !reflect.DeepEqual(batches[2], want) {
		t.Errorf("last batch = %v, want %v", batches[2], want)
	}
}

func TestBracketedPaste(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, testConfig(), WithRecorder(rec))
	m = send(t, m, keyMsg(tea.KeyTab))
	m = send(t, m, keyMsg(tea.KeyDown))

	m, cmd := sendCmd(t, m, pasteMsg("a\tb\r\nc\td"))
	execCmd(cmd)

	want := []grid.CellUpdate{
		{Row: 1, Col: 0, Value: "a"},
		{Row: 1, Col: 1, Value: "b"},
		{Row: 2, Col: 0, Value: "c"},
		{Row: 2, Col: 1, Value: "d"},
	}
	if got := m.Session().LastUpdates(); !reflect.DeepEqual(got, want) {
		t.Fatalf("LastUpdates = %v, want %v", got, want)
	}
	if got := m.editor.Value(); got != "a" {
		t.Errorf("editor value after paste = %q, want a", got)
	}
	if !m.pasted[nav.Cursor{Row: 2, Col: 1}] {
		t.Error("pasted cells should be marked")
	}
	if !strings.Contains(m.statusMsg, "Pasted 2x2 block at Alpha 2: 4 cells") {
		t.Errorf("status = %q", m.statusMsg)
	}

	kinds, batches := rec.snapshot()
	if len(kinds) != 1 || kinds[0] != journal.KindPaste || !reflect.DeepEqual(batches[0], want) {
		t.Errorf("journal = %v %v, want one paste batch", kinds, batches)
	}
}

func TestPasteOverflowReportsSkipped(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))
	m = send(t, m, keyMsg(tea.KeyShiftTab)) // wraps to the last cell

	m = send(t, m, pasteMsg("x\ty\nz"))

	if got := m.Session().Value(9, 6); got != "x" {
		t.Errorf("anchor = %q, want x", got)
	}
	if len(m.Session().LastUpdates()) != 3 {
		t.Errorf("LastUpdates should keep skipped updates, got %v", m.Session().LastUpdates())
	}
	if len(m.pasted) != 1 {
		t.Errorf("pasted marks = %d, want 1", len(m.pasted))
	}
	if !strings.Contains(m.statusMsg, "2 outside the grid") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestPasteWithoutFocus(t *testing.T) {
	m := newTestModel(t, testConfig())

	m = send(t, m, pasteMsg("a\tb"))

	if m.Session().LastUpdates() != nil {
		t.Error("paste without a focused cell must not write")
	}
	if !strings.Contains(m.statusMsg, "Focus a cell") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestClipboardPasteUsesRequestedAnchor(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))

	m = send(t, m, commands.ClipboardMsg{Text: "1\t2", Row: 4, Col: 5})

	if m.Session().Value(4, 5) != "1" || m.Session().Value(4, 6) != "2" {
		t.Fatalf("clipboard paste not applied at anchor: %v", m.Session().Snapshot()[4])
	}
}

func TestEscBlursAndQuitOnlyWhenIdle(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))

	m = send(t, m, keyMsg(tea.KeyEsc))
	if m.Mode() != ModeIdle {
		t.Fatalf("mode = %v, want idle", m.Mode())
	}
	if _, ok := m.Session().Cursor(); ok {
		t.Fatal("esc should clear the cursor")
	}

	_, cmd := sendCmd(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q while idle should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestTabAfterBlurReturnsToLastCell(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))
	m = send(t, m, keyMsg(tea.KeyDown))
	m = send(t, m, keyMsg(tea.KeyEsc))

	m = send(t, m, keyMsg(tea.KeyEnter))

	cur, ok := m.Session().Cursor()
	if !ok || cur != (nav.Cursor{Row: 1, Col: 0}) {
		t.Fatalf("cursor = %v, %v; want {1 0}", cur, ok)
	}
}

func TestEnterMovesDown(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))

	for i := 0; i < 12; i++ {
		m = send(t, m, keyMsg(tea.KeyEnter))
	}

	if m.editCell != (nav.Cursor{Row: 9, Col: 0}) {
		t.Errorf("editor cell = %v, want bottom row", m.editCell)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, testConfig())

	m = send(t, m, runes("?"))
	if m.Mode() != ModeHelp {
		t.Fatalf("mode = %v, want help", m.Mode())
	}
	m = send(t, m, keyMsg(tea.KeyDown))
	if m.Mode() != ModeHelp {
		t.Fatal("other keys should not close help")
	}
	m = send(t, m, keyMsg(tea.KeyEsc))
	if m.Mode() != ModeIdle {
		t.Fatalf("mode = %v, want idle after closing help", m.Mode())
	}
}

func TestCtrlCQuitsWhileEditing(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = send(t, m, keyMsg(tea.KeyTab))

	_, cmd := sendCmd(t, m, keyMsg(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a\tb\r\nc", want: "a\tb\nc"},
		{in: "a\rb", want: "a\nb"},
		{in: "a\nb", want: "a\nb"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := normalizeLineEndings(tt.in); got != tt.want {
			t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
