// Package config loads the optional birdlens.yaml presentation settings.
// Only UI concerns live here: slider ranges and steps, sweep resolution,
// and the export directory. The reference catalogs are fixed product data
// and are deliberately not configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and under
// the user config directory.
const FileName = "birdlens.yaml"

// Range is an inclusive slider range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config holds presentation-layer settings. Zero values in the file fall
// back to the defaults, so a partial file is fine.
type Config struct {
	FocalRange    Range   `yaml:"focal_range"`
	DistanceRange Range   `yaml:"distance_range"`
	FocalStep     float64 `yaml:"focal_step"`
	DistanceStep  float64 `yaml:"distance_step"`
	CoarseFactor  float64 `yaml:"coarse_factor"`
	SweepSteps    int     `yaml:"sweep_steps"`
	ExportDir     string  `yaml:"export_dir"`
}

// Default returns the built-in settings: the slider ranges the product has
// always shipped with.
func Default() Config {
	return Config{
		FocalRange:    Range{Min: 70, Max: 800},
		DistanceRange: Range{Min: 5, Max: 100},
		FocalStep:     10,
		DistanceStep:  1,
		CoarseFactor:  5,
		SweepSteps:    40,
		ExportDir:     ".",
	}
}

// Locate returns the path of the first config file found: ./birdlens.yaml,
// then the user config directory. ok is false when none exists.
func Locate() (path string, ok bool) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path = filepath.Join(dir, "birdlens", FileName)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}

// Load reads a config file and overlays it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills fields the file left at zero.
func (c *Config) applyDefaults() {
	def := Default()
	if c.FocalRange == (Range{}) {
		c.FocalRange = def.FocalRange
	}
	if c.DistanceRange == (Range{}) {
		c.DistanceRange = def.DistanceRange
	}
	if c.FocalStep == 0 {
		c.FocalStep = def.FocalStep
	}
	if c.DistanceStep == 0 {
		c.DistanceStep = def.DistanceStep
	}
	if c.CoarseFactor == 0 {
		c.CoarseFactor = def.CoarseFactor
	}
	if c.SweepSteps == 0 {
		c.SweepSteps = def.SweepSteps
	}
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
}

// Validate rejects settings the engine or UI cannot work with.
func (c Config) Validate() error {
	if c.FocalRange.Min <= 0 || c.FocalRange.Max <= c.FocalRange.Min {
		return fmt.Errorf("focal_range [%v, %v] must be positive and ascending", c.FocalRange.Min, c.FocalRange.Max)
	}
	if c.DistanceRange.Min <= 0 || c.DistanceRange.Max <= c.DistanceRange.Min {
		return fmt.Errorf("distance_range [%v, %v] must be positive and ascending", c.DistanceRange.Min, c.DistanceRange.Max)
	}
	if c.FocalStep <= 0 || c.DistanceStep <= 0 {
		return fmt.Errorf("slider steps must be positive")
	}
	if c.CoarseFactor < 1 {
		return fmt.Errorf("coarse_factor %v must be >= 1", c.CoarseFactor)
	}
	if c.SweepSteps < 2 {
		return fmt.Errorf("sweep_steps %d must be >= 2", c.SweepSteps)
	}
	return nil
}
