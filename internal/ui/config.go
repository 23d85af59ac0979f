package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/cellgrid/internal/config"
	"github.com/javiermolinar/cellgrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var initOnly bool
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the configuration file path and current values.

--init writes a config file with default values if none exists.
--edit asks for each value interactively and saves the result.

Example:
  cellgrid config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			out := cmd.OutOrStdout()
			switch {
			case initOnly:
				return initConfig(out, path)
			case edit:
				return editConfig(bufio.NewReader(cmd.InOrStdin()), out, path)
			default:
				fmt.Fprintf(out, "Config file: %s\n\n", path)
				printConfig(out, a.config)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Write a default config file if none exists")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")
	return cmd
}

// initConfig writes defaults to path unless a file is already there.
func initConfig(w io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "Config already exists at %s\n", path)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config path: %w", err)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}

// editConfig loads the config at path, prompts for every value, validates
// and saves it back.
func editConfig(reader *bufio.Reader, w io.Writer, path string) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Fprintf(w, "Config file: %s\n\n", path)
	printConfig(w, cfg)
	fmt.Fprintln(w)

	cfg.Grid.Rows = promptInt(reader, w, "Rows", cfg.Grid.Rows)
	cfg.Grid.Columns = promptSlice(reader, w, "Columns (comma-separated)", cfg.Grid.Columns)
	cfg.UI.Theme = promptTheme(reader, w, cfg.UI.Theme)
	cfg.UI.CellWidth = promptInt(reader, w, fmt.Sprintf("Cell width (%d-%d)", config.MinCellWidth, config.MaxCellWidth), cfg.UI.CellWidth)
	cfg.UI.ShowDiagnostics = promptBool(reader, w, "Show diagnostics panel", cfg.UI.ShowDiagnostics)
	cfg.Journal.Enabled = promptBool(reader, w, "Enable journal", cfg.Journal.Enabled)
	cfg.Journal.Path = promptValue(reader, w, "Journal path", cfg.Journal.Path)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(w, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[grid]")
	fmt.Fprintf(w, "  rows             = %d\n", cfg.Grid.Rows)
	fmt.Fprintf(w, "  columns          = %s\n", strings.Join(cfg.Grid.Columns, ", "))
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  cell_width       = %d\n", cfg.UI.CellWidth)
	fmt.Fprintf(w, "  show_diagnostics = %t\n", cfg.UI.ShowDiagnostics)
	fmt.Fprintln(w, "\n[journal]")
	fmt.Fprintf(w, "  enabled          = %t\n", cfg.Journal.Enabled)
	fmt.Fprintf(w, "  path             = %s\n", cfg.Journal.Path)
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, w io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, w, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(w, "  Invalid number %q\n", value)
		// Input exhausted, keep the current value.
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptBool(reader *bufio.Reader, w io.Writer, label string, current bool) bool {
	def := "y/N"
	if current {
		def = "Y/n"
	}
	fmt.Fprintf(w, "  %s [%s]: ", label, def)
	input, _ := reader.ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}

func promptSlice(reader *bufio.Reader, w io.Writer, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Fprintf(w, "  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, w io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, w, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
