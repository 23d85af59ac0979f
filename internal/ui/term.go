package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/cellgrid/internal/journal"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

var (
	colorHeader  = color.New(color.Bold)
	colorApplied = color.New(color.FgGreen)
	colorSkipped = color.New(color.FgYellow)
	colorMuted   = color.New(color.FgWhite, color.Faint)

	colorKinds = map[string]*color.Color{
		journal.KindPaste: color.New(color.FgCyan, color.Bold),
		journal.KindEdit:  color.New(color.FgMagenta, color.Bold),
	}
)

// outputWidth returns the width of the terminal behind w, or defaultWidth
// when w is not a terminal.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output.
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatApplied(s string) string {
	return colorApplied.Sprint(s)
}

func formatSkipped(s string) string {
	return colorSkipped.Sprint(s)
}

// formatKind colors a journal batch kind; unknown kinds are printed plain.
func formatKind(kind string) string {
	if c, ok := colorKinds[kind]; ok {
		return c.Sprint(kind)
	}
	return kind
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
