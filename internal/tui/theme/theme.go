// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured or the name is unknown.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme is a named set of hex colors, read from an embedded TOML file.
type Theme struct {
	Name   string `toml:"name"`
	Base   Base   `toml:"base"`
	Grid   Grid   `toml:"grid"`
	Status Status `toml:"status"`
}

// Base colors apply to the whole screen.
type Base struct {
	Bg     string `toml:"bg"`
	Fg     string `toml:"fg"`
	Muted  string `toml:"muted"`  // Row numbers, help text
	Accent string `toml:"accent"` // Title, borders
}

// Grid colors apply to the table.
type Grid struct {
	Header string `toml:"header"` // Column header background
	Focus  string `toml:"focus"`  // Focused cell background
	Pasted string `toml:"pasted"` // Cells written by the last paste
}

// Status colors apply to the footer.
type Status struct {
	Error string `toml:"error"`
}

// Load loads a theme by name from the embedded files.
// Unknown names fall back to DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile(path.Join("embedded", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	t.fillMissing()
	return &t, nil
}

// fillMissing lets a theme file leave out the colors that can be derived.
func (t *Theme) fillMissing() {
	if t.Base.Muted == "" {
		t.Base.Muted = t.Base.Fg
	}
	if t.Grid.Header == "" {
		t.Grid.Header = t.Base.Bg
	}
	if t.Grid.Focus == "" {
		t.Grid.Focus = firstNonEmpty(t.Grid.Header, t.Base.Accent)
	}
	if t.Grid.Pasted == "" {
		t.Grid.Pasted = t.Base.Accent
	}
	if t.Status.Error == "" {
		t.Status.Error = t.Base.Accent
	}
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names, default first.
func Available() []string {
	entries, err := fs.ReadDir(embeddedThemes, "embedded")
	if err != nil {
		return []string{DefaultName}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".toml")
		if ok && name != DefaultName {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return append([]string{DefaultName}, names...)
}

// IsAvailable reports whether a theme name is available. Case-insensitive.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
