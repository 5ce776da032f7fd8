package optics

import "github.com/ryan4559/Bird-Lens-Simulator/pkg/model"

// ClassifyMagnification buckets a binocular magnification into a usage tier.
// Bands are evaluated in ascending order and partition the domain with no
// gaps; 10 and 20 belong to the lower band, matching binocular conventions.
func ClassifyMagnification(magnification float64) model.MagnificationTier {
	switch {
	case magnification <= 10:
		return model.MagnificationHandheld
	case magnification <= 20:
		return model.MagnificationStabilized
	case magnification <= 60:
		return model.MagnificationSpottingScope
	default:
		return model.MagnificationAstronomical
	}
}

// ClassifyComposition buckets a frame-fill percentage into a composition
// tier. 10 belongs to the environmental band and 80 to the optimal band.
func ClassifyComposition(fillPercent float64) model.CompositionTier {
	switch {
	case fillPercent < 10:
		return model.CompositionTooSmall
	case fillPercent < 30:
		return model.CompositionEnvironmental
	case fillPercent <= 80:
		return model.CompositionOptimal
	default:
		return model.CompositionCloseUp
	}
}
