// Package nav tracks the selected grid cell and moves it with directional keys.
package nav

import "fmt"

// Direction is a single-axis cursor movement.
type Direction int

const (
	None Direction = iota // Not a navigation key
	Up
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseKey maps a key name to a direction. Both terminal key names ("up")
// and DOM-style names ("ArrowUp") are recognized; anything else is None.
func ParseKey(key string) Direction {
	switch key {
	case "up", "ArrowUp":
		return Up
	case "down", "ArrowDown":
		return Down
	case "left", "ArrowLeft":
		return Left
	case "right", "ArrowRight":
		return Right
	default:
		return None
	}
}

// Cursor is a selected cell coordinate.
type Cursor struct {
	Row int
	Col int
}

// Result describes the outcome of a key press.
type Result struct {
	Cursor   Cursor // Cursor after the key (zero value when not selected)
	Selected bool   // False while no cell is selected
	Handled  bool   // Key was consumed as navigation; must not reach the cell editor
	Moved    bool   // Cursor changed; the rendering layer must focus Cursor
}

// Controller is the navigation state machine: Unselected or Selected(row, col).
type Controller struct {
	rows     int
	cols     int
	cursor   Cursor
	selected bool
}

// New creates an unselected controller for a rows x cols grid.
func New(rows, cols int) *Controller {
	return &Controller{rows: rows, cols: cols}
}

// Selected returns the current cursor, or false when no cell is selected.
func (c *Controller) Selected() (Cursor, bool) {
	return c.cursor, c.selected
}

// Focus selects (row, col) unconditionally. It is the transition used when a
// cell is focused by click or tab rather than by navigation.
func (c *Controller) Focus(row, col int) {
	c.cursor = Cursor{Row: row, Col: col}
	c.selected = true
}

// Clear returns the controller to the unselected state.
func (c *Controller) Clear() {
	c.cursor = Cursor{}
	c.selected = false
}

// Move applies a directional key. The cursor is clamped to the grid bounds.
func (c *Controller) Move(d Direction) Result {
	if d == None || !c.selected {
		return c.result(false, false)
	}

	prev := c.cursor
	next := prev
	switch d {
	case Up:
		next.Row = max(0, prev.Row-1)
	case Down:
		next.Row = min(c.rows-1, prev.Row+1)
	case Left:
		next.Col = max(0, prev.Col-1)
	case Right:
		next.Col = min(c.cols-1, prev.Col+1)
	}

	c.cursor = next
	return c.result(true, next != prev)
}

func (c *Controller) result(handled, moved bool) Result {
	return Result{
		Cursor:   c.cursor,
		Selected: c.selected,
		Handled:  handled,
		Moved:    moved,
	}
}
