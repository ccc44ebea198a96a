// Package config loads optional JSON tuning files for the trajectory
// pipeline. Fields omitted from the file keep their compiled defaults, so
// partial configs are safe.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// Tuning is the root configuration for the pipeline thresholds. Every field
// is a pointer so an absent field can be told apart from an explicit zero.
type Tuning struct {
	// Cleaning and speed estimation
	EarthRadiusM         *float64 `json:"earth_radius_m,omitempty"`
	OutlierThresholdM    *float64 `json:"outlier_threshold_m,omitempty"`
	SpeedWindowHalfWidth *int     `json:"speed_window_half_width,omitempty"`

	// No-movement trimmer
	TrimFrameRange   *int     `json:"trim_frame_range,omitempty"`
	TrimMinDistanceM *float64 `json:"trim_min_distance_m,omitempty"`
}

// Load reads a Tuning from a JSON file. The file must have a .json extension;
// unknown fields are rejected so typos do not silently fall back to defaults.
func Load(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("tuning file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var t Tuning
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning JSON: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// Validate checks that the configured values are usable.
func (t *Tuning) Validate() error {
	if t.EarthRadiusM != nil && *t.EarthRadiusM <= 0 {
		return fmt.Errorf("earth_radius_m must be positive, got %f", *t.EarthRadiusM)
	}
	if t.OutlierThresholdM != nil && *t.OutlierThresholdM <= 0 {
		return fmt.Errorf("outlier_threshold_m must be positive, got %f", *t.OutlierThresholdM)
	}
	if t.SpeedWindowHalfWidth != nil && *t.SpeedWindowHalfWidth < 1 {
		return fmt.Errorf("speed_window_half_width must be at least 1, got %d", *t.SpeedWindowHalfWidth)
	}
	if t.TrimFrameRange != nil && *t.TrimFrameRange < 1 {
		return fmt.Errorf("trim_frame_range must be at least 1, got %d", *t.TrimFrameRange)
	}
	if t.TrimMinDistanceM != nil && *t.TrimMinDistanceM < 0 {
		return fmt.Errorf("trim_min_distance_m must be non-negative, got %f", *t.TrimMinDistanceM)
	}
	return nil
}

// PipelineConfig returns track.DefaultConfig overlaid with any set fields.
func (t *Tuning) PipelineConfig() track.Config {
	cfg := track.DefaultConfig()
	if t == nil {
		return cfg
	}
	if t.EarthRadiusM != nil {
		cfg.EarthRadiusM = *t.EarthRadiusM
	}
	if t.OutlierThresholdM != nil {
		cfg.OutlierThresholdM = *t.OutlierThresholdM
	}
	if t.SpeedWindowHalfWidth != nil {
		cfg.SpeedWindowHalfWidth = *t.SpeedWindowHalfWidth
	}
	return cfg
}

// TrimConfig returns track.DefaultTrimConfig overlaid with any set fields.
func (t *Tuning) TrimConfig() track.TrimConfig {
	cfg := track.DefaultTrimConfig()
	if t == nil {
		return cfg
	}
	if t.TrimFrameRange != nil {
		cfg.FrameRange = *t.TrimFrameRange
	}
	if t.TrimMinDistanceM != nil {
		cfg.MinDistanceM = *t.TrimMinDistanceM
	}
	return cfg
}
