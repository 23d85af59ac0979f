package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds lipgloss colors for a Theme plus the shades derived from it.
type Palette struct {
	Bg     lipgloss.Color
	Fg     lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Header lipgloss.Color
	Focus  lipgloss.Color
	Error  lipgloss.Color

	Stripe   lipgloss.Color // Background of odd rows
	PastedBg lipgloss.Color // Pasted color mixed into the background

	TextOnAccent lipgloss.Color
	TextOnFocus  lipgloss.Color
	TextOnPasted lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme means the default theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	base := t.Base

	light := isLightTheme(base.Bg)
	pastedBg := tintedBg(t.Grid.Pasted, base.Bg, light)

	return &Palette{
		Bg:     lipgloss.Color(base.Bg),
		Fg:     lipgloss.Color(base.Fg),
		Muted:  lipgloss.Color(base.Muted),
		Accent: lipgloss.Color(base.Accent),
		Header: lipgloss.Color(t.Grid.Header),
		Focus:  lipgloss.Color(t.Grid.Focus),
		Error:  lipgloss.Color(t.Status.Error),

		Stripe:   lipgloss.Color(alternateShade(base.Bg, light)),
		PastedBg: lipgloss.Color(pastedBg),

		TextOnAccent: lipgloss.Color(chooseTextColor(base.Accent, base.Bg, base.Fg)),
		TextOnFocus:  lipgloss.Color(chooseTextColor(t.Grid.Focus, base.Bg, base.Fg)),
		TextOnPasted: lipgloss.Color(chooseTextColor(pastedBg, base.Bg, base.Fg)),
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// tintedBg mixes an accent into the background so text stays readable on it.
func tintedBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return blendColors(accent, bg, 0.65)
}

// alternateShade creates a subtle alternate shade for striped rows.
func alternateShade(hex string, isLight bool) string {
	if isLight {
		return blendColors(hex, "#000000", 0.04)
	}
	return blendColors(hex, "#ffffff", 0.04)
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a toward b by ratio (0 = a, 1 = b). Invalid input returns a.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = max(0, min(1, ratio))
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
