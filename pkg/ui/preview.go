package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

// previewRows is the inner height of the ASCII framing preview. The box
// stands in for the sensor's vertical extent; the subject block is scaled
// by the computed fill percentage.
const previewRows = 9

// RenderFramePreview draws the framing preview box. Fill beyond 100% draws
// a full frame; the readout next to it carries the overflow.
func RenderFramePreview(subject model.SubjectProfile, fillPercent float64, width int, t Theme) string {
	innerW := width - 2
	if innerW < 10 {
		innerW = 10
	}

	subjRows := int(fillPercent / 100 * previewRows)
	if subjRows > previewRows {
		subjRows = previewRows
	}
	if subjRows < 1 && fillPercent > 0 {
		subjRows = 1
	}
	// Terminal cells are roughly twice as tall as wide.
	subjCols := subjRows * 2
	if subjCols > innerW {
		subjCols = innerW
	}

	color := lipgloss.Color(subject.DisplayColor)
	subjStyle := t.Renderer.NewStyle().Foreground(color)
	borderStyle := t.Renderer.NewStyle().Foreground(t.Border)

	top := borderStyle.Render("┌" + strings.Repeat("─", innerW) + "┐")
	bottom := borderStyle.Render("└" + strings.Repeat("─", innerW) + "┘")

	firstSubjRow := (previewRows - subjRows) / 2
	leftPad := (innerW - subjCols) / 2

	lines := make([]string, 0, previewRows+2)
	lines = append(lines, top)
	for row := 0; row < previewRows; row++ {
		var body string
		if row >= firstSubjRow && row < firstSubjRow+subjRows {
			body = strings.Repeat(" ", leftPad) +
				subjStyle.Render(strings.Repeat("█", subjCols)) +
				strings.Repeat(" ", innerW-leftPad-subjCols)
		} else {
			body = strings.Repeat(" ", innerW)
		}
		lines = append(lines, borderStyle.Render("│")+body+borderStyle.Render("│"))
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}
