// Package tui provides the terminal user interface for cellgrid.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/cellgrid/internal/config"
	"github.com/javiermolinar/cellgrid/internal/nav"
	"github.com/javiermolinar/cellgrid/internal/session"
	"github.com/javiermolinar/cellgrid/internal/tui/commands"
	"github.com/javiermolinar/cellgrid/internal/tui/theme"
	"github.com/javiermolinar/cellgrid/internal/tui/view"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeIdle Mode = iota // No cell focused
	ModeEdit             // A cell is focused and bound to the editor
	ModeHelp             // Help overlay
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeEdit:
		return "edit"
	case ModeHelp:
		return "help"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config   *config.Config
	session  *session.Session
	focus    *focusRequests
	recorder commands.BatchRecorder

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	keys   KeyMap
	help   help.Model
	editor textinput.Model

	// State
	mode      Mode
	prevMode  Mode       // Restored when the help overlay closes
	editCell  nav.Cursor // Cell the editor is bound to (valid in ModeEdit)
	lastCell  nav.Cursor // Last focused cell, re-entered with tab/enter after a blur
	pasted    map[nav.Cursor]bool
	showDiags bool

	// Terminal dimensions and layout
	width        int
	height       int
	cellWidth    int
	scrollOffset int // First visible grid row

	gridStyles  view.GridStyles
	layoutCache LayoutCache

	// Messages
	statusMsg   string
	statusTime  time.Time
	statusIsErr bool

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithRecorder journals applied update lists through rec.
func WithRecorder(rec commands.BatchRecorder) ModelOption {
	return func(m *Model) {
		m.recorder = rec
	}
}

// New creates a new TUI model for the grid described by cfg.
func New(cfg *config.Config, opts ...ModelOption) (*Model, error) {
	focus := &focusRequests{}
	sess, err := session.New(cfg.Grid.Rows, cfg.Cols(),
		session.WithFocusSink(focus),
		session.WithLogger(debugLog),
	)
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	cellWidth := cfg.UI.CellWidth
	if cellWidth <= 0 {
		cellWidth = defaultCellWidth
	}

	editor := textinput.New()
	editor.Prompt = ""
	editor.Width = max(1, cellWidth-3) // padding plus the trailing cursor
	editor.TextStyle = styles.EditorTextStyle
	editor.Cursor.Style = styles.EditorCursorStyle
	editor.Cursor.TextStyle = styles.EditorTextStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.ModalTitleStyle
	h.Styles.FullDesc = styles.ModalTextStyle
	h.Styles.FullSeparator = styles.ModalTextStyle

	m := &Model{
		config:    cfg,
		session:   sess,
		focus:     focus,
		theme:     t,
		styles:    styles,
		keys:      DefaultKeyMap(),
		help:      h,
		editor:    editor,
		mode:      ModeIdle,
		pasted:    map[nav.Cursor]bool{},
		showDiags: cfg.UI.ShowDiagnostics,
		cellWidth: cellWidth,
	}
	m.gridStyles = newGridStyles(styles, cellWidth, rowNumberWidth(sess.Rows()))
	m.layoutCache = m.buildLayoutCache(0, 0)

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.statusMsg != "" {
		return tea.Batch(textinput.Blink, commands.ClearStatusAfter(time.Until(m.statusTime)))
	}
	return textinput.Blink
}

// Session returns the session backing the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Mode returns the current interaction mode.
func (m Model) Mode() Mode {
	return m.mode
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, rec commands.BatchRecorder, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	opts := []ModelOption{}
	if state, err := DetectInitState(cfg, config.DefaultConfigPath()); err != nil {
		logError("detect_init_state", err)
	} else {
		opts = append(opts, WithInitState(state))
	}
	if rec != nil {
		opts = append(opts, WithRecorder(rec))
	}
	model, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
