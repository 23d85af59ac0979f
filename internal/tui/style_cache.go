package tui

import "github.com/javiermolinar/cellgrid/internal/tui/view"

// newGridStyles precomputes the table styles for a cell width and
// row-number width, so rendering never resizes a style per cell.
func newGridStyles(styles *Styles, cellWidth, rowNumWidth int) view.GridStyles {
	g := view.GridStyles{
		Header:    styles.HeaderStyle.Width(cellWidth),
		RowNumber: styles.RowNumberStyle.Width(rowNumWidth),
		Border:    styles.BorderStyle,
	}
	g.Cells[view.CellPlain] = styles.CellStyle.Width(cellWidth)
	g.Cells[view.CellStripe] = styles.CellAltStyle.Width(cellWidth)
	g.Cells[view.CellPasted] = styles.PastedStyle.Width(cellWidth)
	g.Cells[view.CellFocused] = styles.FocusedStyle.Width(cellWidth)
	return g
}
