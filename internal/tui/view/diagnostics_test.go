package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func diagState(width, height int, updates, grid []string) DiagnosticsViewState {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return DiagnosticsViewState{
		InnerW:      width,
		Height:      height,
		UpdateLines: updates,
		GridLines:   grid,
		BoxStyle:    box.Width(width - box.GetHorizontalBorderSize()).Height(height - box.GetVerticalBorderSize()),
		TitleStyle:  lipgloss.NewStyle(),
		BodyStyle:   lipgloss.NewStyle(),
	}
}

func TestRenderDiagnostics(t *testing.T) {
	out := ansi.Strip(RenderDiagnostics(diagState(60, 6, []string{`{"row":0}`}, []string{`"a", "b"`, `"c", "d"`})))

	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("panel height = %d, want 6:\n%s", len(lines), out)
	}
	for _, want := range []string{"Last paste (1 updates)", `{"row":0}`, "Grid", `"c", "d"`} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestRenderDiagnostics_Overflow(t *testing.T) {
	updates := make([]string, 10)
	for i := range updates {
		updates[i] = fmt.Sprintf("update-%d", i)
	}

	// 6 lines: 2 border, 1 title, 3 body
	out := ansi.Strip(RenderDiagnostics(diagState(60, 6, updates, nil)))

	if !strings.Contains(out, "update-1") || strings.Contains(out, "update-2") {
		t.Errorf("expected two visible updates:\n%s", out)
	}
	if !strings.Contains(out, "… 8 more") {
		t.Errorf("expected overflow marker:\n%s", out)
	}
}

func TestRenderDiagnostics_NoRoom(t *testing.T) {
	if out := RenderDiagnostics(diagState(60, 0, nil, nil)); out != "" {
		t.Errorf("expected empty panel, got %q", out)
	}
}
