// Package catalog holds the fixed reference data the simulator works from:
// subject sizes, sensor formats, and digital-crop steps. The catalogs are
// part of the product's knowledge base, not user configuration.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"

	"github.com/sahilm/fuzzy"
)

// FullFrameHeightMillimeters is the physical sensor height of the 1.0x
// reference format. Reduced formats derive their height from it.
const FullFrameHeightMillimeters = 24.0

var subjects = []model.SubjectProfile{
	{ID: "sparrow", DisplayName: "Eurasian Tree Sparrow", HeightCentimeters: 16, DisplayColor: "#8BE9FD"},
	{ID: "mallard", DisplayName: "Mallard", HeightCentimeters: 59, DisplayColor: "#50FA7B"},
	{ID: "heron", DisplayName: "Grey Heron", HeightCentimeters: 95, DisplayColor: "#BD93F9"},
}

var sensorFormats = []model.SensorFormat{
	{ID: "full-frame", DisplayName: "Full frame", CropFactor: 1.0, SensorHeightMillimeters: 24.0},
	{ID: "aps-c", DisplayName: "APS-C", CropFactor: 1.5, SensorHeightMillimeters: 16.0},
}

var digitalCrops = []model.DigitalCropOption{
	{Factor: 1.0, Label: "none"},
	{Factor: 1.4, Label: "1.4x crop"},
	{Factor: 2.0, Label: "2.0x crop"},
}

// Subjects returns the subject catalog in display order.
func Subjects() []model.SubjectProfile {
	out := make([]model.SubjectProfile, len(subjects))
	copy(out, subjects)
	return out
}

// SensorFormats returns the sensor format catalog in display order.
func SensorFormats() []model.SensorFormat {
	out := make([]model.SensorFormat, len(sensorFormats))
	copy(out, sensorFormats)
	return out
}

// DigitalCrops returns the digital-crop catalog in ascending factor order.
func DigitalCrops() []model.DigitalCropOption {
	out := make([]model.DigitalCropOption, len(digitalCrops))
	copy(out, digitalCrops)
	return out
}

// SubjectByID looks up a subject by its identifier.
func SubjectByID(id string) (model.SubjectProfile, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return model.SubjectProfile{}, false
}

// SensorFormatByID looks up a sensor format by its identifier.
func SensorFormatByID(id string) (model.SensorFormat, bool) {
	for _, f := range sensorFormats {
		if f.ID == id {
			return f, true
		}
	}
	return model.SensorFormat{}, false
}

// DigitalCropByFactor looks up a digital-crop option by its factor.
func DigitalCropByFactor(factor float64) (model.DigitalCropOption, bool) {
	for _, c := range digitalCrops {
		if c.Factor == factor {
			return c, true
		}
	}
	return model.DigitalCropOption{}, false
}

// MatchSubject resolves a free-form query against subject IDs and display
// names. Exact ID matches win; otherwise the best fuzzy match is returned.
func MatchSubject(query string) (model.SubjectProfile, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.SubjectProfile{}, false
	}
	if s, ok := SubjectByID(strings.ToLower(query)); ok {
		return s, true
	}

	haystack := make([]string, len(subjects))
	for i, s := range subjects {
		haystack[i] = s.ID + " " + s.DisplayName
	}
	matches := fuzzy.Find(query, haystack)
	if len(matches) == 0 {
		return model.SubjectProfile{}, false
	}
	return subjects[matches[0].Index], true
}

// Validate checks the catalog invariants: unique identifiers, positive
// dimensions, crop factors >= 1, and sensor heights consistent with the
// full-frame reference. It is called from tests and at startup.
func Validate() error {
	seen := make(map[string]bool)
	for _, s := range subjects {
		if s.ID == "" {
			return fmt.Errorf("subject with empty ID")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate subject ID %q", s.ID)
		}
		seen[s.ID] = true
		if s.HeightCentimeters <= 0 {
			return fmt.Errorf("subject %q: height must be positive, got %v", s.ID, s.HeightCentimeters)
		}
	}

	seen = make(map[string]bool)
	for _, f := range sensorFormats {
		if f.ID == "" {
			return fmt.Errorf("sensor format with empty ID")
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate sensor format ID %q", f.ID)
		}
		seen[f.ID] = true
		if f.CropFactor < 1.0 {
			return fmt.Errorf("sensor format %q: crop factor must be >= 1, got %v", f.ID, f.CropFactor)
		}
		want := FullFrameHeightMillimeters / f.CropFactor
		if math.Abs(f.SensorHeightMillimeters-want) > 1e-9 {
			return fmt.Errorf("sensor format %q: height %vmm inconsistent with crop factor %v (want %vmm)",
				f.ID, f.SensorHeightMillimeters, f.CropFactor, want)
		}
	}

	seenFactor := make(map[float64]bool)
	for _, c := range digitalCrops {
		if c.Factor < 1.0 {
			return fmt.Errorf("digital crop %q: factor must be >= 1, got %v", c.Label, c.Factor)
		}
		if seenFactor[c.Factor] {
			return fmt.Errorf("duplicate digital crop factor %v", c.Factor)
		}
		seenFactor[c.Factor] = true
	}
	return nil
}
