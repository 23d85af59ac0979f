package view

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/cellgrid/internal/grid"
)

// Ellipsis marks truncated cell content.
const Ellipsis = "…"

// SanitizeCell replaces control characters so a value renders on one line.
// Tabs and line breaks can reach a cell through a ragged paste or an edit.
func SanitizeCell(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return '→'
		case r == '\r' || r == '\n':
			return '↵'
		case r < 0x20 || r == 0x7f:
			return '·'
		}
		return r
	}, value)
}

// FitCell sanitizes value and truncates it to width terminal columns.
func FitCell(value string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(SanitizeCell(value), width, Ellipsis)
}

// UpdateLines formats an update list as one JSON object per line.
func UpdateLines(updates []grid.CellUpdate) []string {
	lines := make([]string, 0, len(updates))
	for _, u := range updates {
		b, err := json.Marshal(u)
		if err != nil {
			lines = append(lines, fmt.Sprintf(`{"row":%d,"col":%d,"error":%q}`, u.Row, u.Col, err.Error()))
			continue
		}
		lines = append(lines, string(b))
	}
	return lines
}

// GridLines dumps a snapshot as quoted, comma-separated values per row.
func GridLines(snapshot [][]string) []string {
	lines := make([]string, 0, len(snapshot))
	for _, row := range snapshot {
		quoted := make([]string, len(row))
		for i, v := range row {
			quoted[i] = strconv.Quote(v)
		}
		lines = append(lines, strings.Join(quoted, ", "))
	}
	return lines
}
