// Package ui provides the cellgrid command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/cellgrid/internal/config"
	"github.com/javiermolinar/cellgrid/internal/journal"
	"github.com/javiermolinar/cellgrid/internal/tui"
	"github.com/javiermolinar/cellgrid/internal/tui/commands"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config    *config.Config
	journal   *journal.Journal
	root      *cobra.Command
	debug     bool // Enable debug logging
	rows      int  // Row count override, 0 keeps the config value
	noJournal bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "cellgrid",
		Short: "A terminal grid editor with tabular paste",
		Long: `cellgrid is a fixed-size grid of text cells for the terminal.

Edit cells directly, paste tab-separated blocks from a spreadsheet,
and move between cells with the arrow keys.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.applyOverrides(); err != nil {
				return err
			}
			rec, err := a.recorder()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(a.config, rec, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.PersistentFlags().IntVar(&a.rows, "rows", 0, "Override the configured row count")
	a.root.PersistentFlags().BoolVar(&a.noJournal, "no-journal", false, "Do not record applied updates in the journal")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.pasteCmd())
	a.root.AddCommand(a.journalCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cellgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// applyOverrides applies flag overrides to the loaded config.
func (a *App) applyOverrides() error {
	if a.rows == 0 {
		return nil
	}
	a.config.Grid.Rows = a.rows
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid --rows: %w", err)
	}
	return nil
}

// journalEnabled reports whether applied updates should be journaled.
func (a *App) journalEnabled() bool {
	return a.config.Journal.Enabled && !a.noJournal
}

// openJournal opens the journal once and keeps it for Close.
func (a *App) openJournal() (*journal.Journal, error) {
	if a.journal != nil {
		return a.journal, nil
	}
	j, err := journal.Open(a.config.Journal.Path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	a.journal = j
	return j, nil
}

// recorder returns the batch recorder for the TUI, or nil when journaling is off.
func (a *App) recorder() (commands.BatchRecorder, error) {
	if !a.journalEnabled() {
		return nil, nil
	}
	j, err := a.openJournal()
	if err != nil {
		return nil, err
	}
	return j, nil
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources opened by commands.
func (a *App) Close() error {
	if a.journal == nil {
		return nil
	}
	err := a.journal.Close()
	a.journal = nil
	return err
}
