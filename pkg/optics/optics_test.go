package optics

import (
	"errors"
	"math"
	"testing"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

var (
	fullFrame = model.SensorFormat{ID: "full-frame", DisplayName: "Full frame", CropFactor: 1.0, SensorHeightMillimeters: 24.0}
	apsc      = model.SensorFormat{ID: "aps-c", DisplayName: "APS-C", CropFactor: 1.5, SensorHeightMillimeters: 16.0}
	smallBird = model.SubjectProfile{ID: "sparrow", DisplayName: "Eurasian Tree Sparrow", HeightCentimeters: 16}
	largeBird = model.SubjectProfile{ID: "heron", DisplayName: "Grey Heron", HeightCentimeters: 95}
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    model.SimulationInput
		wantEq   float64
		wantFill float64
		wantMag  float64
	}{
		{
			name: "small bird at 20m on full frame",
			input: model.SimulationInput{
				FocalLengthMillimeters: 400,
				DistanceMeters:         20,
				Sensor:                 fullFrame,
				DigitalCropFactor:      1.0,
				Subject:                smallBird,
			},
			wantEq:   400,
			wantFill: 3.2 / 24.0 * 100,
			wantMag:  8.0,
		},
		{
			name: "small bird at 20m on APS-C",
			input: model.SimulationInput{
				FocalLengthMillimeters: 400,
				DistanceMeters:         20,
				Sensor:                 apsc,
				DigitalCropFactor:      1.0,
				Subject:                smallBird,
			},
			wantEq:   600,
			wantFill: 20.0,
			wantMag:  12.0,
		},
		{
			name: "large bird at 5m with 2x digital crop clamps at ceiling",
			input: model.SimulationInput{
				FocalLengthMillimeters: 800,
				DistanceMeters:         5,
				Sensor:                 fullFrame,
				DigitalCropFactor:      2.0,
				Subject:                largeBird,
			},
			wantEq:   1600,
			wantFill: 200.0,
			wantMag:  32.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.input)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if !almostEqual(got.EquivalentFocalLengthMillimeters, tt.wantEq) {
				t.Errorf("equivalent focal = %v, want %v", got.EquivalentFocalLengthMillimeters, tt.wantEq)
			}
			if !almostEqual(got.FrameFillPercentage, tt.wantFill) {
				t.Errorf("frame fill = %v, want %v", got.FrameFillPercentage, tt.wantFill)
			}
			if !almostEqual(got.BinocularMagnification, tt.wantMag) {
				t.Errorf("magnification = %v, want %v", got.BinocularMagnification, tt.wantMag)
			}
		})
	}
}

func TestComputeFillClampInvariant(t *testing.T) {
	// Fill stays in [0, 200] across a wide grid, including distances far
	// below the UI slider floor.
	for _, focal := range []float64{10, 70, 400, 800, 3000} {
		for _, dist := range []float64{0.001, 0.5, 5, 100, 10000} {
			for _, crop := range []float64{1.0, 1.4, 2.0} {
				in := model.SimulationInput{
					FocalLengthMillimeters: focal,
					DistanceMeters:         dist,
					Sensor:                 apsc,
					DigitalCropFactor:      crop,
					Subject:                largeBird,
				}
				got, err := Compute(in)
				if err != nil {
					t.Fatalf("Compute(focal=%v dist=%v crop=%v) error = %v", focal, dist, crop, err)
				}
				if got.FrameFillPercentage < 0 || got.FrameFillPercentage > FillCeilingPercent {
					t.Errorf("fill %v out of [0, %v] for focal=%v dist=%v crop=%v",
						got.FrameFillPercentage, FillCeilingPercent, focal, dist, crop)
				}
			}
		}
	}
}

func TestComputeMonotonicity(t *testing.T) {
	base := model.SimulationInput{
		FocalLengthMillimeters: 400,
		DistanceMeters:         20,
		Sensor:                 fullFrame,
		DigitalCropFactor:      1.0,
		Subject:                smallBird,
	}

	fill := func(in model.SimulationInput) float64 {
		t.Helper()
		res, err := Compute(in)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		return res.FrameFillPercentage
	}

	// Strictly increasing in focal length (below the clamp ceiling).
	prev := -1.0
	for _, focal := range []float64{70, 200, 400, 600, 800} {
		in := base
		in.FocalLengthMillimeters = focal
		if got := fill(in); got <= prev {
			t.Errorf("fill not increasing in focal length: %v at %vmm, previous %v", got, focal, prev)
		} else {
			prev = got
		}
	}

	// Strictly increasing in subject height.
	prev = -1.0
	for _, height := range []float64{10, 16, 59, 95} {
		in := base
		in.Subject.HeightCentimeters = height
		if got := fill(in); got <= prev {
			t.Errorf("fill not increasing in subject height: %v at %vcm, previous %v", got, height, prev)
		} else {
			prev = got
		}
	}

	// Strictly decreasing in distance.
	prev = math.Inf(1)
	for _, dist := range []float64{5, 10, 20, 50, 100} {
		in := base
		in.DistanceMeters = dist
		if got := fill(in); got >= prev {
			t.Errorf("fill not decreasing in distance: %v at %vm, previous %v", got, dist, prev)
		} else {
			prev = got
		}
	}
}

func TestComputeIdentities(t *testing.T) {
	in := model.SimulationInput{
		FocalLengthMillimeters: 523,
		DistanceMeters:         37,
		Sensor:                 fullFrame,
		DigitalCropFactor:      1.0,
		Subject:                smallBird,
	}
	got, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// With both crop factors at 1.0 the equivalent focal length is the
	// physical one, exactly.
	if got.EquivalentFocalLengthMillimeters != in.FocalLengthMillimeters {
		t.Errorf("equivalent focal = %v, want exactly %v", got.EquivalentFocalLengthMillimeters, in.FocalLengthMillimeters)
	}

	// Magnification is the equivalent focal over 50mm, with no rounding.
	want := got.EquivalentFocalLengthMillimeters / NormalLensFocalMillimeters
	if got.BinocularMagnification != want {
		t.Errorf("magnification = %v, want exactly %v", got.BinocularMagnification, want)
	}
}

func TestComputeIdempotent(t *testing.T) {
	in := model.SimulationInput{
		FocalLengthMillimeters: 400,
		DistanceMeters:         20,
		Sensor:                 apsc,
		DigitalCropFactor:      1.4,
		Subject:                smallBird,
	}
	first, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if first != second {
		t.Errorf("identical inputs produced different results: %+v vs %+v", first, second)
	}
}

func TestComputeErrors(t *testing.T) {
	valid := model.SimulationInput{
		FocalLengthMillimeters: 400,
		DistanceMeters:         20,
		Sensor:                 fullFrame,
		DigitalCropFactor:      1.0,
		Subject:                smallBird,
	}

	tests := []struct {
		name    string
		mutate  func(in *model.SimulationInput)
		wantErr error
	}{
		{
			name:    "zero distance",
			mutate:  func(in *model.SimulationInput) { in.DistanceMeters = 0 },
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "zero sensor height",
			mutate:  func(in *model.SimulationInput) { in.Sensor.SensorHeightMillimeters = 0 },
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "zero digital crop factor",
			mutate:  func(in *model.SimulationInput) { in.DigitalCropFactor = 0 },
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "zero focal length",
			mutate:  func(in *model.SimulationInput) { in.FocalLengthMillimeters = 0 },
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "zero subject height",
			mutate:  func(in *model.SimulationInput) { in.Subject.HeightCentimeters = 0 },
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "negative distance",
			mutate:  func(in *model.SimulationInput) { in.DistanceMeters = -5 },
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "negative focal length",
			mutate:  func(in *model.SimulationInput) { in.FocalLengthMillimeters = -400 },
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "NaN focal length",
			mutate:  func(in *model.SimulationInput) { in.FocalLengthMillimeters = math.NaN() },
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "infinite distance",
			mutate:  func(in *model.SimulationInput) { in.DistanceMeters = math.Inf(1) },
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := Compute(in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeTinyDistanceClampsNotErrors(t *testing.T) {
	// Sub-millimeter distances are in-domain; the clamp policy handles
	// them rather than an error.
	in := model.SimulationInput{
		FocalLengthMillimeters: 400,
		DistanceMeters:         0.0005,
		Sensor:                 fullFrame,
		DigitalCropFactor:      1.0,
		Subject:                smallBird,
	}
	got, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got.FrameFillPercentage != FillCeilingPercent {
		t.Errorf("fill = %v, want ceiling %v", got.FrameFillPercentage, FillCeilingPercent)
	}
}
