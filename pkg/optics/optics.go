// Package optics is the framing calculation engine. Every function here is
// pure: no I/O, no shared state, safe to call from any goroutine.
//
// The model is the standard pinhole-camera proportional projection used in
// photography education: image height on the sensor scales linearly with
// focal length and subject height, and inversely with distance. It is a
// decision aid, not exact optics.
package optics

import (
	"errors"
	"fmt"
	"math"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

// Sentinel errors returned by Compute. Callers check them with errors.Is.
var (
	// ErrInvalidArgument marks a negative, non-finite, or
	// zero-where-positive-required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero marks a zero distance, sensor height, or
	// digital-crop factor.
	ErrDivisionByZero = errors.New("division by zero")
)

const (
	// FillCeilingPercent caps the reported frame-fill percentage. Beyond
	// this the UI only needs "over 100%", not the exact magnitude.
	FillCeilingPercent = 200.0

	// NormalLensFocalMillimeters is the "normal lens is roughly 1x human
	// vision" baseline used for binocular magnification.
	NormalLensFocalMillimeters = 50.0
)

// Compute derives the three framing metrics from a simulation input.
//
// The UI restricts focal length and distance to its slider ranges, but
// Compute does not assume that: any positive, finite inputs produce a
// finite non-negative result. Out-of-domain inputs fail with
// ErrInvalidArgument or ErrDivisionByZero; Compute never panics.
func Compute(in model.SimulationInput) (model.SimulationResult, error) {
	if err := validate(in); err != nil {
		return model.SimulationResult{}, err
	}

	equivalentFocal := in.FocalLengthMillimeters * in.TotalCropFactor()

	objectHeightMM := in.Subject.HeightCentimeters * 10
	distanceMM := in.DistanceMeters * 1000

	// Proportional projection. The physical focal length is used here
	// because the sensor height below is also the physical one; the crop
	// factors cancel consistently between the two.
	imageHeightMM := in.FocalLengthMillimeters * objectHeightMM / distanceMM

	// A digital crop reduces the sensor area read out, raising apparent
	// magnification.
	effectiveSensorMM := in.Sensor.SensorHeightMillimeters / in.DigitalCropFactor

	fill := imageHeightMM / effectiveSensorMM * 100
	if fill > FillCeilingPercent {
		fill = FillCeilingPercent
	}

	return model.SimulationResult{
		EquivalentFocalLengthMillimeters: equivalentFocal,
		FrameFillPercentage:              fill,
		BinocularMagnification:           equivalentFocal / NormalLensFocalMillimeters,
	}, nil
}

func validate(in model.SimulationInput) error {
	checks := []struct {
		name     string
		value    float64
		zeroDivs bool
	}{
		{"focal length", in.FocalLengthMillimeters, false},
		{"distance", in.DistanceMeters, true},
		{"subject height", in.Subject.HeightCentimeters, false},
		{"sensor height", in.Sensor.SensorHeightMillimeters, true},
		{"sensor crop factor", in.Sensor.CropFactor, false},
		{"digital crop factor", in.DigitalCropFactor, true},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s is not finite: %w", c.name, ErrInvalidArgument)
		}
		if c.value < 0 {
			return fmt.Errorf("%s is negative (%v): %w", c.name, c.value, ErrInvalidArgument)
		}
		if c.value == 0 {
			if c.zeroDivs {
				return fmt.Errorf("%s is zero: %w", c.name, ErrDivisionByZero)
			}
			return fmt.Errorf("%s must be positive: %w", c.name, ErrInvalidArgument)
		}
	}
	return nil
}
