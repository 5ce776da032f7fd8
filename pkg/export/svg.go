// Package export renders framing previews outside the terminal: an SVG and
// a PNG picturing how much of the frame the subject occupies.
package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

const (
	frameMargin  = 40
	captionSpace = 60
)

// subjectColor falls back to a neutral tone when the catalog entry carries
// no display color.
func subjectColor(s model.SubjectProfile) string {
	if s.DisplayColor != "" {
		return s.DisplayColor
	}
	return "#BFBFBF"
}

// subjectExtent converts a fill percentage into the drawn subject height in
// pixels. Drawing caps at the frame edge; overflow is conveyed by the
// caption, not by spilling outside the frame.
func subjectExtent(fillPercent float64, frameHeight int) int {
	h := int(fillPercent / 100 * float64(frameHeight))
	if h > frameHeight {
		h = frameHeight
	}
	if h < 2 {
		h = 2
	}
	return h
}

// WriteSVG renders the framing preview as SVG.
func WriteSVG(w io.Writer, in model.SimulationInput, res model.SimulationResult, width, height int) error {
	if width <= frameMargin*2 || height <= frameMargin*2+captionSpace {
		return fmt.Errorf("canvas %dx%d too small", width, height)
	}

	frameW := width - frameMargin*2
	frameH := height - frameMargin*2 - captionSpace

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1E1F29")

	// Sensor frame.
	canvas.Rect(frameMargin, frameMargin, frameW, frameH,
		"fill:#282A36;stroke:#6272A4;stroke-width:2")

	// Subject, drawn as an ellipse with the computed vertical extent and a
	// birdlike 0.6 width-to-height ratio.
	subjH := subjectExtent(res.FrameFillPercentage, frameH)
	subjW := subjH * 6 / 10
	if subjW > frameW {
		subjW = frameW
	}
	cx := frameMargin + frameW/2
	cy := frameMargin + frameH/2
	canvas.Ellipse(cx, cy, subjW/2, subjH/2,
		fmt.Sprintf("fill:%s;fill-opacity:0.85", subjectColor(in.Subject)))

	// Caption.
	caption := fmt.Sprintf("%s at %.0fm - %.0fmm (%.0fmm equiv.) - fill %.1f%% - %.1fx",
		in.Subject.DisplayName, in.DistanceMeters, in.FocalLengthMillimeters,
		res.EquivalentFocalLengthMillimeters, res.FrameFillPercentage, res.BinocularMagnification)
	canvas.Text(width/2, height-captionSpace/2, caption,
		"fill:#F8F8F2;font-family:monospace;font-size:14px;text-anchor:middle")

	canvas.End()
	return nil
}
