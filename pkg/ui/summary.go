package ui

import (
	"fmt"
	"strings"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/optics"
)

// Summary formats a calculation as plain text, suitable for the clipboard
// and for one-shot CLI output.
func Summary(in model.SimulationInput, res model.SimulationResult) string {
	magTier := optics.ClassifyMagnification(res.BinocularMagnification)
	compTier := optics.ClassifyComposition(res.FrameFillPercentage)

	crop := "no digital crop"
	if in.DigitalCropFactor > 1 {
		crop = fmt.Sprintf("%.1fx digital crop", in.DigitalCropFactor)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%.0f cm) at %.0f m\n", in.Subject.DisplayName, in.Subject.HeightCentimeters, in.DistanceMeters)
	fmt.Fprintf(&b, "Lens: %.0f mm on %s (%.1fx), %s\n", in.FocalLengthMillimeters, in.Sensor.DisplayName, in.Sensor.CropFactor, crop)
	fmt.Fprintf(&b, "Equivalent focal length: %.0f mm\n", res.EquivalentFocalLengthMillimeters)
	fmt.Fprintf(&b, "Frame fill: %s\n", FormatFill(res.FrameFillPercentage))
	fmt.Fprintf(&b, "Magnification: %.1fx (%s)\n", res.BinocularMagnification, magTier.Description())
	fmt.Fprintf(&b, "Composition: %s\n", compTier.Description())
	return b.String()
}

// FormatFill renders a fill percentage, flagging the clamp ceiling so the
// reader knows the true value is off the scale.
func FormatFill(fillPercent float64) string {
	if fillPercent >= optics.FillCeilingPercent {
		return fmt.Sprintf("%.0f%%+ (beyond scale)", optics.FillCeilingPercent)
	}
	return fmt.Sprintf("%.1f%%", fillPercent)
}
