package optics

import (
	"fmt"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"

	"gonum.org/v1/gonum/floats"
)

// SweepPoint pairs a camera-to-subject distance with the metrics the engine
// computes at that distance.
type SweepPoint struct {
	DistanceMeters float64
	Result         model.SimulationResult
	Tier           model.CompositionTier
}

// DistanceSweep evaluates the engine across an evenly spaced distance grid,
// holding every other input fixed. The input's own DistanceMeters is
// ignored. Answers "how does framing change as I move?" without the user
// dragging the slider through every value.
func DistanceSweep(in model.SimulationInput, minMeters, maxMeters float64, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d: %w", steps, ErrInvalidArgument)
	}
	if minMeters <= 0 || maxMeters <= minMeters {
		return nil, fmt.Errorf("sweep range [%v, %v] must be positive and ascending: %w",
			minMeters, maxMeters, ErrInvalidArgument)
	}

	grid := floats.Span(make([]float64, steps), minMeters, maxMeters)
	points := make([]SweepPoint, 0, steps)
	for _, d := range grid {
		in.DistanceMeters = d
		res, err := Compute(in)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{
			DistanceMeters: d,
			Result:         res,
			Tier:           ClassifyComposition(res.FrameFillPercentage),
		})
	}
	return points, nil
}

// OptimalDistanceBand returns the contiguous run of sweep points whose
// composition tier is optimal. Fill decreases monotonically with distance,
// so at most one such run exists. ok is false when no point is optimal.
func OptimalDistanceBand(points []SweepPoint) (nearMeters, farMeters float64, ok bool) {
	for _, p := range points {
		if p.Tier != model.CompositionOptimal {
			if ok {
				break
			}
			continue
		}
		if !ok {
			nearMeters = p.DistanceMeters
			ok = true
		}
		farMeters = p.DistanceMeters
	}
	return nearMeters, farMeters, ok
}
