// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Cell width bounds in terminal columns.
const (
	MinCellWidth = 3
	MaxCellWidth = 40
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	UI      UIConfig      `toml:"ui"`
	Journal JournalConfig `toml:"journal"`
}

// GridConfig holds the fixed grid shape.
type GridConfig struct {
	Rows    int      `toml:"rows"`    // e.g., 10
	Columns []string `toml:"columns"` // Header labels; the count sets the column count
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme           string `toml:"theme"`            // "mocha", "macchiato", "frappe", "latte"
	CellWidth       int    `toml:"cell_width"`       // Terminal columns per cell
	ShowDiagnostics bool   `toml:"show_diagnostics"` // Show the last update list and grid dump
}

// JournalConfig holds diagnostic journal settings.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:    10,
			Columns: []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"},
		},
		UI: UIConfig{
			Theme:           "mocha",
			CellWidth:       10,
			ShowDiagnostics: true,
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    defaultJournalPath(),
		},
	}
}

// Cols returns the number of grid columns.
func (c *Config) Cols() int {
	return len(c.Grid.Columns)
}

// defaultJournalPath returns the default journal database path.
func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cellgrid-journal.db"
	}
	return filepath.Join(home, ".local", "share", "cellgrid", "journal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "cellgrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Journal.Path = expandPath(cfg.Journal.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CELLGRID_ROWS"); v != "" {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing CELLGRID_ROWS: %w", err)
		}
		cfg.Grid.Rows = rows
	}
	if v := os.Getenv("CELLGRID_COLUMNS"); v != "" {
		cfg.Grid.Columns = splitList(v)
	}

	if v := os.Getenv("CELLGRID_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("CELLGRID_CELL_WIDTH"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing CELLGRID_CELL_WIDTH: %w", err)
		}
		cfg.UI.CellWidth = width
	}

	if v := os.Getenv("CELLGRID_JOURNAL_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing CELLGRID_JOURNAL_ENABLED: %w", err)
		}
		cfg.Journal.Enabled = enabled
	}
	if v := os.Getenv("CELLGRID_JOURNAL_PATH"); v != "" {
		cfg.Journal.Path = v
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Grid.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Grid.Rows)
	}
	if len(c.Grid.Columns) == 0 {
		return errors.New("at least one column must be configured")
	}
	seen := make(map[string]bool, len(c.Grid.Columns))
	for _, name := range c.Grid.Columns {
		if strings.TrimSpace(name) == "" {
			return errors.New("column names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate column: %s", name)
		}
		seen[name] = true
	}
	if c.UI.CellWidth < MinCellWidth || c.UI.CellWidth > MaxCellWidth {
		return fmt.Errorf("cell_width must be between %d and %d, got %d", MinCellWidth, MaxCellWidth, c.UI.CellWidth)
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return errors.New("journal path must be set when the journal is enabled")
	}
	return nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
