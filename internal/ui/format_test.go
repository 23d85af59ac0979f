package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPrintGrid(t *testing.T) {
	noColor(t)
	snapshot := [][]string{
		{"a", "a-long-value"},
		{"", "日本"},
	}

	var out bytes.Buffer
	PrintGrid(&out, snapshot, []string{"Alpha", "Bravo"}, 6, 80)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out.String())
	}
	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d width = %d, want %d: %q", i, w, width, line)
		}
	}
	if !strings.Contains(lines[1], "a-lon…") {
		t.Errorf("long value should be truncated: %q", lines[1])
	}
}

func TestFitCellWidth(t *testing.T) {
	tests := []struct {
		name      string
		cellWidth int
		cols      int
		maxWidth  int
		want      int
	}{
		{name: "fits", cellWidth: 10, cols: 7, maxWidth: 120, want: 10},
		{name: "shrinks", cellWidth: 10, cols: 7, maxWidth: 80, want: 8},
		{name: "floor", cellWidth: 10, cols: 7, maxWidth: 5, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitCellWidth(tt.cellWidth, tt.cols, 2, tt.maxWidth); got != tt.want {
				t.Errorf("fitCellWidth = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutputWidth_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	if got := outputWidth(&buf); got != defaultWidth {
		t.Errorf("outputWidth = %d, want %d", got, defaultWidth)
	}
}

func TestFormatKind(t *testing.T) {
	noColor(t)
	for _, kind := range []string{"paste", "edit", "other"} {
		if got := formatKind(kind); got != kind {
			t.Errorf("formatKind(%q) = %q without color", kind, got)
		}
	}
}
