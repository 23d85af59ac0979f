package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CellKind selects how a grid cell is styled.
type CellKind int

const (
	CellPlain   CellKind = iota
	CellStripe           // odd rows
	CellPasted           // written by the last paste
	CellFocused          // holds the live editor
	cellKindCount
)

// GridStyles are the width-fixed styles of the grid table.
type GridStyles struct {
	Header    lipgloss.Style
	RowNumber lipgloss.Style
	Cells     [cellKindCount]lipgloss.Style
	Border    lipgloss.Style
}

// Cell returns the style for a cell kind.
func (s GridStyles) Cell(kind CellKind) lipgloss.Style {
	if kind < 0 || kind >= cellKindCount {
		return s.Cells[CellPlain]
	}
	return s.Cells[kind]
}

// GridRow is one visible grid row: its index, the display text of each
// cell and how each cell is styled.
type GridRow struct {
	Index  int
	Values []string
	Kinds  []CellKind
}

// TableViewState holds data needed to render the visible part of the grid.
type TableViewState struct {
	InnerW  int
	GridH   int
	Columns []string
	Rows    []GridRow
	Styles  GridStyles
	Bg      lipgloss.Color
}

// RenderTable renders the grid window with a row-number column on the left.
// Column widths come from the styles, so every row lines up with the header.
func RenderTable(state TableViewState) string {
	if state.GridH <= 0 || len(state.Rows) == 0 {
		return ""
	}

	body := make([][]string, len(state.Rows))
	for i, r := range state.Rows {
		body[i] = append([]string{strconv.Itoa(r.Index + 1)}, r.Values...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(state.Styles.Border).
		Headers(HeaderLabels(state.Columns)...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return state.Styles.RowNumber
			}
			if row == table.HeaderRow {
				return state.Styles.Header
			}
			kinds := state.Rows[row].Kinds
			if col-1 >= len(kinds) {
				return state.Styles.Cell(CellPlain)
			}
			return state.Styles.Cell(kinds[col-1])
		})

	return PlaceBox(state.InnerW, state.GridH, lipgloss.Top, t.Render(), state.Bg)
}
