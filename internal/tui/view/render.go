// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// Screen is one frame: the app body and an optional centered overlay.
type Screen struct {
	Width     int
	Height    int
	Body      string
	Overlay   string // Empty when no overlay is open
	OverlayBg lipgloss.Color
}

// Render composes the final frame. The size is unknown until the first
// window size message arrives.
func Render(s Screen) string {
	if s.Width <= 0 || s.Height <= 0 {
		return "Loading..."
	}
	if s.Overlay == "" {
		return s.Body
	}
	return RenderModalOverlay(s.Body, s.Overlay, s.Width, s.Height, s.OverlayBg)
}
