package model

// SubjectProfile describes a reference subject the user can frame.
// Profiles are catalog values; they are never mutated after startup.
type SubjectProfile struct {
	ID                string
	DisplayName       string
	HeightCentimeters float64
	DisplayColor      string
}

// SensorFormat describes a camera sensor format. CropFactor and
// SensorHeightMillimeters are jointly consistent with the full-frame
// reference: height = reference height / crop factor.
type SensorFormat struct {
	ID                      string
	DisplayName             string
	CropFactor              float64
	SensorHeightMillimeters float64
}

// DigitalCropOption is one step of in-camera digital crop. Factor is
// always >= 1; there is no upscaling below native readout.
type DigitalCropOption struct {
	Factor float64
	Label  string
}

// SimulationInput carries the five scalars one framing calculation needs.
// Inputs are ephemeral: a new value is built on every parameter change and
// superseded by the next one.
type SimulationInput struct {
	FocalLengthMillimeters float64
	DistanceMeters         float64
	Sensor                 SensorFormat
	DigitalCropFactor      float64
	Subject                SubjectProfile
}

// TotalCropFactor is the combined sensor and digital crop factor.
func (in SimulationInput) TotalCropFactor() float64 {
	return in.Sensor.CropFactor * in.DigitalCropFactor
}

// SimulationResult holds the three derived framing metrics. It is a pure
// function of its SimulationInput and is recomputed rather than stored.
type SimulationResult struct {
	EquivalentFocalLengthMillimeters float64
	FrameFillPercentage              float64
	BinocularMagnification           float64
}

// MagnificationTier buckets a binocular magnification into usage guidance.
type MagnificationTier string

const (
	MagnificationHandheld      MagnificationTier = "handheld"
	MagnificationStabilized    MagnificationTier = "stabilized"
	MagnificationSpottingScope MagnificationTier = "spotting_scope"
	MagnificationAstronomical  MagnificationTier = "astronomical"
)

// IsValid returns true if the tier is a recognized value.
func (t MagnificationTier) IsValid() bool {
	switch t {
	case MagnificationHandheld, MagnificationStabilized, MagnificationSpottingScope, MagnificationAstronomical:
		return true
	}
	return false
}

// Description returns the human-readable guidance for the tier.
func (t MagnificationTier) Description() string {
	switch t {
	case MagnificationHandheld:
		return "general handheld binoculars range"
	case MagnificationStabilized:
		return "high-magnification binoculars, stabilization recommended"
	case MagnificationSpottingScope:
		return "spotting scope, low-power end"
	case MagnificationAstronomical:
		return "spotting scope high-power, astronomical grade"
	}
	return "unknown"
}

// CompositionTier buckets a frame-fill percentage into composition guidance.
type CompositionTier string

const (
	CompositionTooSmall      CompositionTier = "too_small"
	CompositionEnvironmental CompositionTier = "environmental"
	CompositionOptimal       CompositionTier = "optimal"
	CompositionCloseUp       CompositionTier = "close_up"
)

// IsValid returns true if the tier is a recognized value.
func (t CompositionTier) IsValid() bool {
	switch t {
	case CompositionTooSmall, CompositionEnvironmental, CompositionOptimal, CompositionCloseUp:
		return true
	}
	return false
}

// Description returns the human-readable guidance for the tier.
func (t CompositionTier) Description() string {
	switch t {
	case CompositionTooSmall:
		return "subject too small, add digital crop or close the distance"
	case CompositionEnvironmental:
		return "environmental composition, good for habitat context"
	case CompositionOptimal:
		return "optimal composition, balanced detail and framing"
	case CompositionCloseUp:
		return "tight close-up, suited to portrait-style shots"
	}
	return "unknown"
}
