// Package grid provides the fixed-size text cell store.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is created with a non-positive size.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// CellUpdate is an intended write to a single cell.
// Coordinates are not validated; out-of-range updates are dropped on write.
type CellUpdate struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

// Grid holds a rows x cols table of text cells. The shape never changes after New.
type Grid struct {
	rows  int
	cols  int
	cells [][]string
}

// New creates a grid with all cells empty.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: emptyCells(rows, cols),
	}, nil
}

func emptyCells(rows, cols int) [][]string {
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}
	return cells
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the value at (row, col), or false if out of range.
func (g *Grid) Cell(row, col int) (string, bool) {
	if !g.InBounds(row, col) {
		return "", false
	}
	return g.cells[row][col], true
}

// Read returns a row-major copy of the cell contents.
func (g *Grid) Read() [][]string {
	return copyCells(g.cells)
}

// WriteOne replaces a single cell. Out-of-range coordinates are ignored.
func (g *Grid) WriteOne(row, col int, value string) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = value
}

// WriteBatch applies updates in order against one copy of the grid and swaps
// the result in as a single transition. Out-of-range updates are skipped and
// the later of two updates to the same cell wins. Returns the number applied.
func (g *Grid) WriteBatch(updates []CellUpdate) int {
	if len(updates) == 0 {
		return 0
	}

	next := copyCells(g.cells)
	applied := 0
	for _, u := range updates {
		if !g.InBounds(u.Row, u.Col) {
			continue
		}
		next[u.Row][u.Col] = u.Value
		applied++
	}

	g.cells = next
	return applied
}

func copyCells(src [][]string) [][]string {
	dst := make([][]string, len(src))
	for r, row := range src {
		dst[r] = make([]string, len(row))
		copy(dst[r], row)
	}
	return dst
}
