package export

import (
	"fmt"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

// WritePNG renders the framing preview as a raster image with the same
// layout as WriteSVG.
func WritePNG(w io.Writer, in model.SimulationInput, res model.SimulationResult, width, height int) error {
	if width <= frameMargin*2 || height <= frameMargin*2+captionSpace {
		return fmt.Errorf("canvas %dx%d too small", width, height)
	}

	frameW := float64(width - frameMargin*2)
	frameH := float64(height - frameMargin*2 - captionSpace)

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#1E1F29")
	dc.Clear()

	// Sensor frame.
	dc.SetHexColor("#282A36")
	dc.DrawRectangle(frameMargin, frameMargin, frameW, frameH)
	dc.Fill()
	dc.SetHexColor("#6272A4")
	dc.SetLineWidth(2)
	dc.DrawRectangle(frameMargin, frameMargin, frameW, frameH)
	dc.Stroke()

	// Subject.
	subjH := float64(subjectExtent(res.FrameFillPercentage, int(frameH)))
	subjW := subjH * 0.6
	if subjW > frameW {
		subjW = frameW
	}
	cx := frameMargin + frameW/2
	cy := frameMargin + frameH/2
	dc.SetHexColor(subjectColor(in.Subject))
	dc.DrawEllipse(cx, cy, subjW/2, subjH/2)
	dc.Fill()

	// Caption.
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetHexColor("#F8F8F2")
	caption := fmt.Sprintf("%s at %.0fm - %.0fmm (%.0fmm equiv.) - fill %.1f%% - %.1fx",
		in.Subject.DisplayName, in.DistanceMeters, in.FocalLengthMillimeters,
		res.EquivalentFocalLengthMillimeters, res.FrameFillPercentage, res.BinocularMagnification)
	dc.DrawStringAnchored(caption, float64(width)/2, float64(height)-captionSpace/2, 0.5, 0.5)

	return dc.EncodePNG(w)
}
