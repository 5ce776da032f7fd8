package ui

import (
	"fmt"
	"strings"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/optics"
)

// RenderResults renders the derived metrics, tier badges, and the optimal
// distance band when one exists in the slider range.
func RenderResults(res model.SimulationResult, bandNear, bandFar float64, hasBand bool, width int, t Theme) string {
	magTier := optics.ClassifyMagnification(res.BinocularMagnification)
	compTier := optics.ClassifyComposition(res.FrameFillPercentage)

	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Width(18)
	valueStyle := t.Renderer.NewStyle().Foreground(t.Text).Bold(true)
	hintStyle := t.Renderer.NewStyle().Foreground(t.Muted)

	barWidth := width - 40
	if barWidth < 10 {
		barWidth = 10
	}
	fillBar := RenderMiniBar(res.FrameFillPercentage/100, barWidth, t.CompositionColor(compTier), t)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Equivalent focal") +
		valueStyle.Render(fmt.Sprintf("%.0f mm", res.EquivalentFocalLengthMillimeters)) + "\n")
	b.WriteString(labelStyle.Render("Frame fill") +
		valueStyle.Render(FormatFill(res.FrameFillPercentage)) + " " + fillBar + "\n")
	b.WriteString(labelStyle.Render("Magnification") +
		valueStyle.Render(fmt.Sprintf("%.1fx", res.BinocularMagnification)) +
		" " + RenderMagnificationBadge(magTier, t) + "\n")
	b.WriteString(labelStyle.Render("Composition") + RenderCompositionBadge(compTier, t) + "\n")
	b.WriteString(hintStyle.Render("  " + compTier.Description() + "\n"))
	b.WriteString(hintStyle.Render("  " + magTier.Description() + "\n"))

	if hasBand {
		b.WriteString(labelStyle.Render("Optimal band") +
			valueStyle.Render(fmt.Sprintf("%.0f-%.0f m", bandNear, bandFar)))
	} else {
		b.WriteString(labelStyle.Render("Optimal band") +
			hintStyle.Render("none in slider range"))
	}
	return b.String()
}
