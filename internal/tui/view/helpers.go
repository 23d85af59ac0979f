package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to exactly width x height, filling
// short lines with the background color and dropping lines past height.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	fill := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + fill.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderModalOverlay centers modal over base, splicing it line by line.
func RenderModalOverlay(base, modal string, width, height int, modalBg lipgloss.Color) string {
	modalLines := strings.Split(modal, "\n")
	modalW := 0
	for _, line := range modalLines {
		modalW = max(modalW, lipgloss.Width(line))
	}
	if modalW == 0 || width <= 0 || height <= 0 {
		return base
	}
	modalW = min(modalW, width)
	if len(modalLines) > height {
		modalLines = modalLines[:height]
	}

	top := max(0, (height-len(modalLines))/2)
	left := max(0, (width-modalW)/2)
	fill := lipgloss.NewStyle().Background(modalBg)

	baseLines := strings.Split(PadLinesWithBackground(base, width, height, lipgloss.Color("")), "\n")
	for i, line := range modalLines {
		lineW := lipgloss.Width(line)
		if lineW > modalW {
			line = ansi.Cut(line, 0, modalW)
		} else if lineW < modalW {
			line += fill.Render(strings.Repeat(" ", modalW-lineW))
		}
		line = ApplyModalBackgroundResets(line, modalBg) + ansi.ResetStyle

		row := top + i
		baseLines[row] = ansi.Cut(baseLines[row], 0, left) + line + ansi.Cut(baseLines[row], left+modalW, width)
	}
	return strings.Join(baseLines, "\n")
}

// ApplyModalBackgroundResets reapplies the modal background after ANSI
// resets inside a modal line, so inner styles do not punch holes in it.
func ApplyModalBackgroundResets(line string, modalBg lipgloss.Color) string {
	bgSeq := ModalBackgroundSeq(modalBg)
	if bgSeq == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	return strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
}

// ModalBackgroundSeq returns the background escape sequence for the modal color.
func ModalBackgroundSeq(modalBg lipgloss.Color) string {
	if modalBg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(modalBg))).String()
}
