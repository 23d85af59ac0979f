package ui

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/javiermolinar/cellgrid/internal/config"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	DisableColor()
	t.Cleanup(func() {
		if !prev {
			EnableColor()
		}
	})
}

func runApp(t *testing.T, cfg *config.Config, stdin string, args ...string) string {
	t.Helper()
	app := NewApp(cfg)
	t.Cleanup(func() { _ = app.Close() })

	var out bytes.Buffer
	app.root.SetOut(&out)
	app.root.SetErr(&out)
	app.root.SetIn(strings.NewReader(stdin))
	app.SetArgs(args)

	if err := app.Execute(); err != nil {
		t.Fatalf("Execute(%v) failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	out := runApp(t, config.Default(), "", "version")
	if !strings.HasPrefix(out, "cellgrid dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestPasteCmd(t *testing.T) {
	noColor(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  []string
	}{
		{
			name:  "inside_grid",
			stdin: "a\tb\nc\td",
			args:  []string{"paste", "--row", "2", "--col", "3"},
			want: []string{
				"Pasted 2x2 block at row 2, col 3: 4 applied, 0 skipped",
				`{"row":2,"col":3,"value":"a"}`,
				`{"row":3,"col":4,"value":"d"}`,
				"Alpha",
			},
		},
		{
			name:  "overflow",
			stdin: "x\ty\nz",
			args:  []string{"paste", "--row", "9", "--col", "6"},
			want: []string{
				"1 applied, 2 skipped",
				`{"row":9,"col":7,"value":"y"} (outside grid)`,
				`{"row":10,"col":6,"value":"z"} (outside grid)`,
			},
		},
		{
			name:  "trailing_newline_kept",
			stdin: "a\n",
			args:  []string{"paste"},
			want:  []string{`{"row":1,"col":0,"value":""}`, "2 applied"},
		},
		{
			name:  "trailing_newline_trimmed",
			stdin: "a\n",
			args:  []string{"paste", "--trim-final-newline"},
			want:  []string{"1 applied, 0 skipped"},
		},
		{
			name:  "rows_override",
			stdin: "a\nb",
			args:  []string{"paste", "--rows", "3", "--row", "2"},
			want:  []string{"1 applied, 1 skipped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runApp(t, config.Default(), tt.stdin, tt.args...)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPasteCmd_FromFile(t *testing.T) {
	noColor(t)
	path := filepath.Join(t.TempDir(), "block.tsv")
	if err := os.WriteFile(path, []byte("1\t2\t3"), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	out := runApp(t, config.Default(), "", "paste", "--file", path)
	if !strings.Contains(out, "Pasted 1x3 block") {
		t.Errorf("output = %s", out)
	}
}

func TestPasteThenJournal(t *testing.T) {
	noColor(t)
	cfg := config.Default()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "journal.db")

	out := runApp(t, cfg, "x\ty\nz", "paste", "--row", "9", "--col", "6")
	if !strings.Contains(out, "Recorded in") {
		t.Fatalf("paste should be journaled:\n%s", out)
	}

	out = runApp(t, cfg, "", "journal")
	for _, want := range []string{"#1 paste", "1/3 applied", `{"row":9,"col":6,"value":"x"}`} {
		if !strings.Contains(out, want) {
			t.Errorf("journal output missing %q:\n%s", want, out)
		}
	}
}

func TestPasteNoJournalFlag(t *testing.T) {
	noColor(t)
	cfg := config.Default()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "journal.db")

	out := runApp(t, cfg, "x", "paste", "--no-journal")
	if strings.Contains(out, "Recorded in") {
		t.Errorf("--no-journal should skip the journal:\n%s", out)
	}

	out = runApp(t, cfg, "", "journal")
	if !strings.Contains(out, "No journal at") {
		t.Errorf("journal output = %s", out)
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	var out bytes.Buffer

	if err := initConfig(&out, path); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := initConfig(&out, path); err != nil {
		t.Fatalf("second initConfig failed: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q", out.String())
	}
}

func TestEditConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	journalPath := filepath.Join(dir, "j.db")

	input := strings.Join([]string{
		"5",       // rows
		"A, B",    // columns
		"nope",    // invalid theme, asked again
		"latte",   // theme
		"12",      // cell width
		"n",       // diagnostics
		"y",       // journal
		journalPath,
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := editConfig(bufio.NewReader(strings.NewReader(input)), &out, path); err != nil {
		t.Fatalf("editConfig failed: %v\n%s", err, out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Grid.Rows != 5 || strings.Join(cfg.Grid.Columns, ",") != "A,B" {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.CellWidth != 12 || cfg.UI.ShowDiagnostics {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Path != journalPath {
		t.Errorf("journal = %+v", cfg.Journal)
	}
	if !strings.Contains(out.String(), `Invalid theme "nope"`) {
		t.Errorf("expected invalid theme message:\n%s", out.String())
	}
}

func TestEditConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	input := "0\n\n\n\n\n\n\n"

	var out bytes.Buffer
	err := editConfig(bufio.NewReader(strings.NewReader(input)), &out, path)
	if err == nil || !strings.Contains(err.Error(), "rows must be positive") {
		t.Fatalf("expected validation error, got %v", err)
	}
}
