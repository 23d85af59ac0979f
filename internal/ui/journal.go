package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) journalCmd() *cobra.Command {
	var limit int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recently applied update lists",
		Long: `Print the most recent pastes and edits recorded in the journal,
newest first. The journal is a diagnostic log; it never restores a grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return a.runJournal(ctx, cmd.OutOrStdout(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of batches to show")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) runJournal(ctx context.Context, w io.Writer, limit int) error {
	path := a.config.Journal.Path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "No journal at %s\n", path)
		if !a.config.Journal.Enabled {
			fmt.Fprintln(w, formatMuted("Enable it with [journal] enabled = true or CELLGRID_JOURNAL_ENABLED=1."))
		}
		return nil
	}

	j, err := a.openJournal()
	if err != nil {
		return err
	}
	batches, err := j.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	if len(batches) == 0 {
		fmt.Fprintln(w, "Journal is empty.")
		return nil
	}

	rows, cols := a.config.Grid.Rows, a.config.Cols()
	for i, b := range batches {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "#%d %s %s %s\n",
			b.ID,
			formatKind(b.Kind),
			formatMuted(b.RecordedAt.Local().Format("2006-01-02 15:04:05")),
			fmt.Sprintf("%d/%d applied", b.Applied, len(b.Updates)),
		)
		PrintUpdates(w, b.Updates, rows, cols)
	}
	return nil
}
