package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/cellgrid/internal/grid"
	"github.com/javiermolinar/cellgrid/internal/tui/view"
)

// gridColumnGap separates printed grid columns.
const gridColumnGap = " │ "

// PrintUpdates prints an update list one JSON object per line, marking the
// updates that fell outside a rows x cols grid.
func PrintUpdates(w io.Writer, updates []grid.CellUpdate, rows, cols int) {
	lines := view.UpdateLines(updates)
	for i, u := range updates {
		if u.Row >= 0 && u.Row < rows && u.Col >= 0 && u.Col < cols {
			fmt.Fprintf(w, "  %s\n", formatApplied(lines[i]))
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", formatSkipped(lines[i]), formatMuted("(outside grid)"))
	}
}

// PrintGrid prints a snapshot as an aligned table with a header row. Cells are
// narrowed so the table fits maxWidth terminal columns.
func PrintGrid(w io.Writer, snapshot [][]string, columns []string, cellWidth, maxWidth int) {
	rowNumW := len(fmt.Sprint(len(snapshot)))
	cellWidth = fitCellWidth(cellWidth, len(columns), rowNumW, maxWidth)

	header := make([]string, len(columns))
	for i, name := range columns {
		header[i] = pad(name, cellWidth)
	}
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", rowNumW), gridColumnGap, formatHeader(strings.Join(header, gridColumnGap)))

	for r, row := range snapshot {
		cells := make([]string, len(row))
		for c, value := range row {
			cells[c] = pad(value, cellWidth)
		}
		num := runewidth.FillLeft(fmt.Sprint(r+1), rowNumW)
		fmt.Fprintf(w, "%s%s%s\n", formatMuted(num), gridColumnGap, strings.Join(cells, gridColumnGap))
	}
}

// fitCellWidth shrinks cellWidth until cols cells fit in maxWidth, never below 1.
func fitCellWidth(cellWidth, cols, rowNumW, maxWidth int) int {
	gapW := runewidth.StringWidth(gridColumnGap)
	for cellWidth > 1 && rowNumW+cols*(gapW+cellWidth) > maxWidth {
		cellWidth--
	}
	return cellWidth
}

// pad fits a value to exactly width display columns.
func pad(value string, width int) string {
	return runewidth.FillRight(view.FitCell(value, width), width)
}
