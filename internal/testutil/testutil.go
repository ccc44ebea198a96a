// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// MetersPerDegreeLat is the approximate north-south distance of one degree of
// latitude under the pipeline's Earth radius. Fixtures use it to place
// samples a known number of meters apart.
const MetersPerDegreeLat = 6373000.0 * 3.14159265358979 / 180.0

// StraightTrackSamples builds n samples heading north, stepMeters apart, one
// sample every stepMicros of relative time.
func StraightTrackSamples(n int, stepMeters float64, stepMicros int64) []track.FrameSample {
	samples := make([]track.FrameSample, n)
	for i := range samples {
		samples[i] = track.FrameSample{
			Position: &track.Position{
				Lon:       14.0,
				Lat:       46.0 + float64(i)*stepMeters/MetersPerDegreeLat,
				Elevation: 1500.0 - float64(i),
			},
			AbsoluteMicros: 1700000000000000 + int64(i)*stepMicros,
			RelativeMicros: int64(i) * stepMicros,
		}
	}
	return samples
}

// MustBuildTrack builds a track from the samples with default tuning, failing
// the test on any pipeline error.
func MustBuildTrack(t *testing.T, videoID int, samples []track.FrameSample) *track.Track {
	t.Helper()
	tr, err := track.Build(videoID, samples, track.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to build track: %v", err)
	}
	return tr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
