package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/cellgrid/internal/journal"
	"github.com/javiermolinar/cellgrid/internal/paste"
	"github.com/javiermolinar/cellgrid/internal/session"
)

// pasteOptions holds flags for the paste command.
type pasteOptions struct {
	row       int
	col       int
	file      string
	trimFinal bool
	noColor   bool
}

func (a *App) pasteCmd() *cobra.Command {
	var opts pasteOptions

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Paste a tab-separated block into an empty grid and print the result",
		Long: `Read a tabular payload (rows separated by newlines, fields by tabs)
from stdin or a file, paste it into a fresh grid anchored at --row/--col,
and print the ordered update list and the resulting grid.

Updates that fall outside the grid are listed but not applied.

Example:
  printf 'a\tb\nc\td' | cellgrid paste --row 2 --col 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.noColor {
				DisableColor()
			}
			if err := a.applyOverrides(); err != nil {
				return err
			}
			payload, err := readPayload(cmd.InOrStdin(), opts.file)
			if err != nil {
				return err
			}
			if opts.trimFinal {
				payload = strings.TrimSuffix(payload, paste.RowDelimiter)
			}
			return a.runPaste(cmd.Context(), cmd.OutOrStdout(), payload, opts)
		},
	}

	cmd.Flags().IntVar(&opts.row, "row", 0, "Anchor row (0-based)")
	cmd.Flags().IntVar(&opts.col, "col", 0, "Anchor column (0-based)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the payload from a file instead of stdin")
	cmd.Flags().BoolVar(&opts.trimFinal, "trim-final-newline", false, "Drop one trailing newline (files usually end with one)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable color output")
	return cmd
}

func readPayload(stdin io.Reader, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading payload file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func (a *App) runPaste(ctx context.Context, w io.Writer, payload string, opts pasteOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, cols := a.config.Grid.Rows, a.config.Cols()

	sess, err := session.New(rows, cols)
	if err != nil {
		return fmt.Errorf("creating grid: %w", err)
	}
	res := sess.OnPaste(payload, opts.row, opts.col)

	height, width := paste.Extent(payload)
	fmt.Fprintf(w, "Pasted %dx%d block at row %d, col %d: %s applied, %s skipped\n\n",
		height, width, opts.row, opts.col,
		formatApplied(fmt.Sprint(res.Applied)),
		formatSkipped(fmt.Sprint(res.Skipped())),
	)

	fmt.Fprintln(w, formatHeader("Updates"))
	PrintUpdates(w, res.Updates, rows, cols)

	fmt.Fprintf(w, "\n%s\n", formatHeader("Grid"))
	PrintGrid(w, sess.Snapshot(), a.config.Grid.Columns, a.config.UI.CellWidth, outputWidth(w))

	if !a.journalEnabled() {
		return nil
	}
	j, err := a.openJournal()
	if err != nil {
		return err
	}
	if err := j.RecordBatch(ctx, journal.KindPaste, res.Updates, res.Applied); err != nil {
		return fmt.Errorf("journaling paste: %w", err)
	}
	fmt.Fprintf(w, "\n%s\n", formatMuted("Recorded in "+a.config.Journal.Path))
	return nil
}
