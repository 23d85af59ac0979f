package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/cellgrid/internal/tui/theme"
)

// Default cell width, overridden by config.
const defaultCellWidth = 10

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	// Title bar
	TitleStyle     lipgloss.Style
	TitleInfoStyle lipgloss.Style

	// Table
	HeaderStyle    lipgloss.Style
	RowNumberStyle lipgloss.Style
	CellStyle      lipgloss.Style
	CellAltStyle   lipgloss.Style // Zebra stripe for odd rows
	PastedStyle    lipgloss.Style // Cells written by the last paste
	FocusedStyle   lipgloss.Style
	BorderStyle    lipgloss.Style

	// Diagnostics panel
	DiagTitleStyle lipgloss.Style
	DiagBodyStyle  lipgloss.Style
	DiagBoxStyle   lipgloss.Style

	// Footer
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	// Help overlay
	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalTextStyle     lipgloss.Style
	ModalBackdropColor lipgloss.Color

	// Editor
	EditorTextStyle   lipgloss.Style
	EditorCursorStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{colorBg: p.Bg}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(s.colorBg)

	s.TitleInfoStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(p.Accent).
		Background(p.Header)

	s.RowNumberStyle = lipgloss.NewStyle().
		Align(lipgloss.Right).
		Padding(0, 1).
		Foreground(p.Muted).
		Background(p.Header)

	s.CellStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.Fg).
		Background(s.colorBg)

	s.CellAltStyle = s.CellStyle.
		Background(p.Stripe)

	s.PastedStyle = s.CellStyle.
		Background(p.PastedBg).
		Foreground(p.TextOnPasted)

	// Focused cell: selection background, never a border (it would break column widths)
	s.FocusedStyle = s.CellStyle.
		Background(p.Focus).
		Foreground(p.TextOnFocus).
		Bold(true)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(s.colorBg)

	s.DiagTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(s.colorBg)

	s.DiagBodyStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(s.colorBg)

	s.DiagBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(s.colorBg)

	s.StatusErrorStyle = s.StatusStyle.
		Foreground(p.Error).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(s.colorBg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Header).
		Background(p.Header).
		Foreground(p.Fg).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.Header)

	s.ModalTextStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Header)

	s.ModalBackdropColor = p.Header

	s.EditorTextStyle = lipgloss.NewStyle().
		Foreground(p.TextOnFocus).
		Background(p.Focus).
		Bold(true)

	s.EditorCursorStyle = lipgloss.NewStyle().
		Foreground(p.TextOnAccent).
		Background(p.Accent)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

