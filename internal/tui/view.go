package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/cellgrid/internal/nav"
	"github.com/javiermolinar/cellgrid/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	screen := view.Screen{
		Width:     m.width,
		Height:    m.height,
		Body:      m.renderAppContent(),
		OverlayBg: m.styles.ModalBackdropColor,
	}
	if m.mode == ModeHelp {
		screen.Overlay = m.renderHelpModal()
	}
	return view.Render(screen)
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	snapshot := m.session.Snapshot()
	sections := []string{
		view.RenderTitle(m.titleViewState(layout)),
		view.RenderTable(m.tableViewState(layout, snapshot)),
	}
	if layout.DiagH > 0 {
		sections = append(sections, view.RenderDiagnostics(m.diagnosticsViewState(layout, snapshot)))
	}
	sections = append(sections, view.RenderFooter(m.footerViewState(layout)))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) titleViewState(layout LayoutCache) view.TitleViewState {
	info := fmt.Sprintf("%d×%d", m.session.Rows(), m.session.Cols())
	if cur, ok := m.session.Cursor(); ok {
		info = m.cellLabel(cur) + "  " + info
	}
	return view.TitleViewState{
		InnerW:     layout.InnerW,
		Title:      " cellgrid ",
		Info:       info,
		TitleStyle: m.styles.TitleStyle,
		InfoStyle:  m.styles.TitleInfoStyle,
	}
}

func (m Model) tableViewState(layout LayoutCache, snapshot [][]string) view.TableViewState {
	if layout.GridH <= 0 || layout.VisibleRows <= 0 {
		return view.TableViewState{}
	}
	return view.TableViewState{
		InnerW:  layout.InnerW,
		GridH:   layout.GridH,
		Columns: m.config.Grid.Columns,
		Rows:    m.gridRows(layout, snapshot),
		Styles:  m.gridStyles,
		Bg:      m.styles.colorBg,
	}
}

// gridRows builds the visible window of the grid. The focused cell shows the
// live editor instead of the stored value.
func (m Model) gridRows(layout LayoutCache, snapshot [][]string) []view.GridRow {
	start := m.scrollOffset
	end := min(len(snapshot), start+layout.VisibleRows)
	contentW := max(0, layout.CellW-2)

	rows := make([]view.GridRow, 0, max(0, end-start))
	for r := start; r < end; r++ {
		row := view.GridRow{
			Index:  r,
			Values: make([]string, len(snapshot[r])),
			Kinds:  make([]view.CellKind, len(snapshot[r])),
		}
		for c, value := range snapshot[r] {
			cell := nav.Cursor{Row: r, Col: c}
			row.Values[c] = view.FitCell(value, contentW)
			switch {
			case m.isEditing(cell):
				row.Values[c] = ansi.Truncate(m.editor.View(), contentW, "")
				row.Kinds[c] = view.CellFocused
			case m.pasted[cell]:
				row.Kinds[c] = view.CellPasted
			case r%2 == 1:
				row.Kinds[c] = view.CellStripe
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (m Model) isEditing(cell nav.Cursor) bool {
	return m.mode != ModeIdle && m.editCell == cell && m.editor.Focused()
}

func (m Model) diagnosticsViewState(layout LayoutCache, snapshot [][]string) view.DiagnosticsViewState {
	return view.DiagnosticsViewState{
		InnerW:      layout.InnerW,
		Height:      layout.DiagH,
		UpdateLines: view.UpdateLines(m.session.LastUpdates()),
		GridLines:   view.GridLines(snapshot),
		BoxStyle:    layout.DiagStyle,
		TitleStyle:  m.styles.DiagTitleStyle,
		BodyStyle:   m.styles.DiagBodyStyle,
	}
}

func (m Model) footerViewState(layout LayoutCache) view.FooterViewState {
	statusStyle := layout.StatusStyle
	if m.statusIsErr {
		statusStyle = layout.ErrorStyle
	}
	return view.FooterViewState{
		InnerW:      layout.InnerW,
		StatusText:  m.statusMsgOrDefault(),
		HelpText:    m.help.ShortHelpView(m.keys.ShortHelp()),
		StatusStyle: statusStyle,
		HelpStyle:   layout.HelpStyle,
	}
}

func (m Model) statusMsgOrDefault() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	switch m.mode {
	case ModeEdit:
		return fmt.Sprintf("Editing %s", m.cellLabel(m.editCell))
	case ModeHelp:
		return "Help"
	default:
		return "No cell focused: tab or click a cell to start"
	}
}

func (m Model) renderHelpModal() string {
	title := m.styles.ModalTitleStyle.Render("Keys")
	body := m.help.FullHelpView(m.keys.FullHelp())
	return m.styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}
