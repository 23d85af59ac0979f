package tui

import "github.com/javiermolinar/cellgrid/internal/nav"

// focusRequests receives navigation-driven focus moves from the session.
// The Model is copied on every Update, so the session holds a pointer and
// the Model drains it after each key it forwards.
type focusRequests struct {
	cell    nav.Cursor
	pending bool
}

// FocusCell implements session.FocusSink.
func (f *focusRequests) FocusCell(row, col int) {
	f.cell = nav.Cursor{Row: row, Col: col}
	f.pending = true
}

// take returns the last requested cell and clears the request.
func (f *focusRequests) take() (nav.Cursor, bool) {
	if !f.pending {
		return nav.Cursor{}, false
	}
	f.pending = false
	return f.cell, true
}

// nextCell returns the cell after (row, col) in row-major order, wrapping.
func nextCell(row, col, rows, cols int) nav.Cursor {
	idx := (row*cols + col + 1) % (rows * cols)
	return nav.Cursor{Row: idx / cols, Col: idx % cols}
}

// prevCell returns the cell before (row, col) in row-major order, wrapping.
func prevCell(row, col, rows, cols int) nav.Cursor {
	total := rows * cols
	idx := (row*cols + col - 1 + total) % total
	return nav.Cursor{Row: idx / cols, Col: idx % cols}
}
