// Package paste converts tabular clipboard text into positioned cell updates.
package paste

import (
	"strings"

	"github.com/javiermolinar/cellgrid/internal/grid"
)

const (
	// RowDelimiter separates payload rows.
	RowDelimiter = "\n"
	// FieldDelimiter separates fields within a row.
	FieldDelimiter = "\t"
)

// Translate splits payload into rows and fields and anchors each field at
// (anchorRow+i, anchorCol+j). Updates are emitted in row-major payload order.
// Coordinates are not clamped; the grid drops out-of-range updates.
func Translate(payload string, anchorRow, anchorCol int) []grid.CellUpdate {
	rows := strings.Split(payload, RowDelimiter)
	updates := make([]grid.CellUpdate, 0, len(rows))
	for i, row := range rows {
		for j, field := range strings.Split(row, FieldDelimiter) {
			updates = append(updates, grid.CellUpdate{
				Row:   anchorRow + i,
				Col:   anchorCol + j,
				Value: field,
			})
		}
	}
	return updates
}

// Extent reports how many rows the payload spans and the field count of its widest row.
func Extent(payload string) (rows, cols int) {
	for _, row := range strings.Split(payload, RowDelimiter) {
		rows++
		if n := strings.Count(row, FieldDelimiter) + 1; n > cols {
			cols = n
		}
	}
	return rows, cols
}
