// Package session composes the grid store, paste translator, and navigation
// controller behind the inbound/outbound contract of the rendering layer.
package session

import (
	"fmt"

	"github.com/javiermolinar/cellgrid/internal/grid"
	"github.com/javiermolinar/cellgrid/internal/nav"
	"github.com/javiermolinar/cellgrid/internal/paste"
)

// FocusSink is the rendering layer's side of the focus contract.
// FocusCell is called after every navigation-driven cursor change.
type FocusSink interface {
	FocusCell(row, col int)
}

// Logger receives structured diagnostic events.
type Logger interface {
	Log(event string, data map[string]any)
}

type nopLogger struct{}

func (nopLogger) Log(string, map[string]any) {}

// PasteResult is the outcome of a paste event.
type PasteResult struct {
	Updates []grid.CellUpdate // Translated updates in payload order
	Applied int               // Updates that landed inside the grid
}

// Skipped returns the number of updates dropped for being out of range.
func (r PasteResult) Skipped() int {
	return len(r.Updates) - r.Applied
}

// Session owns one grid, one cursor, and the last applied update list.
type Session struct {
	store  *grid.Grid
	nav    *nav.Controller
	last   []grid.CellUpdate
	focus  FocusSink
	logger Logger
}

// Option configures a Session.
type Option func(*Session)

// WithFocusSink sets the receiver of focus moves.
func WithFocusSink(sink FocusSink) Option {
	return func(s *Session) {
		s.focus = sink
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session over an empty rows x cols grid with no selection.
func New(rows, cols int, opts ...Option) (*Session, error) {
	store, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}

	s := &Session{
		store:  store,
		nav:    nav.New(rows, cols),
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// OnCellEdited stores a typed value. Reports whether the cell was in range.
func (s *Session) OnCellEdited(row, col int, value string) bool {
	if !s.store.InBounds(row, col) {
		s.logger.Log("EDIT_DROPPED", map[string]any{"row": row, "col": col})
		return false
	}
	s.store.WriteOne(row, col, value)
	s.logger.Log("EDIT", map[string]any{"row": row, "col": col, "len": len(value)})
	return true
}

// OnPaste translates text anchored at the receiving cell and applies it as
// one batch. The batch is fully applied before OnPaste returns.
func (s *Session) OnPaste(text string, anchorRow, anchorCol int) PasteResult {
	updates := paste.Translate(text, anchorRow, anchorCol)
	applied := s.store.WriteBatch(updates)
	s.last = updates

	s.logger.Log("PASTE", map[string]any{
		"anchor_row": anchorRow,
		"anchor_col": anchorCol,
		"updates":    len(updates),
		"applied":    applied,
	})
	return PasteResult{Updates: updates, Applied: applied}
}

// OnKeyPressed routes a key to the navigation controller. When the cursor
// moves the focus sink is told to focus the new cell. Callers must forward
// keys with Handled == false to the cell editor.
func (s *Session) OnKeyPressed(key string) nav.Result {
	res := s.nav.Move(nav.ParseKey(key))
	if !res.Moved {
		return res
	}

	s.logger.Log("CURSOR_MOVE", map[string]any{
		"key": key,
		"row": res.Cursor.Row,
		"col": res.Cursor.Col,
	})
	if s.focus != nil {
		s.focus.FocusCell(res.Cursor.Row, res.Cursor.Col)
	}
	return res
}

// OnCellFocused records a focus change made outside navigation (click, tab).
// It never calls back into the focus sink.
func (s *Session) OnCellFocused(row, col int) {
	s.nav.Focus(row, col)
	s.logger.Log("FOCUS", map[string]any{"row": row, "col": col})
}

// OnBlur clears the selection.
func (s *Session) OnBlur() {
	s.nav.Clear()
	s.logger.Log("BLUR", nil)
}

// Snapshot returns a copy of the grid contents.
func (s *Session) Snapshot() [][]string {
	return s.store.Read()
}

// Value returns a single cell, or "" when out of range.
func (s *Session) Value(row, col int) string {
	v, _ := s.store.Cell(row, col)
	return v
}

// Cursor returns the selected cell, or false when nothing is selected.
func (s *Session) Cursor() (nav.Cursor, bool) {
	return s.nav.Selected()
}

// LastUpdates returns a copy of the most recent paste's update list.
func (s *Session) LastUpdates() []grid.CellUpdate {
	if s.last == nil {
		return nil
	}
	out := make([]grid.CellUpdate, len(s.last))
	copy(out, s.last)
	return out
}

// Rows returns the grid height.
func (s *Session) Rows() int {
	return s.store.Rows()
}

// Cols returns the grid width.
func (s *Session) Cols() int {
	return s.store.Cols()
}
