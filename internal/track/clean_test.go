package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metersPerDegreeLat = 6373000.0 * math.Pi / 180.0

// straightSamples builds n samples heading north at the given spacing, one
// sample every stepMicros.
func straightSamples(n int, stepMeters float64, stepMicros int64) []FrameSample {
	samples := make([]FrameSample, n)
	for i := range samples {
		samples[i] = FrameSample{
			Position: &Position{
				Lon:       14.0,
				Lat:       46.0 + float64(i)*stepMeters/metersPerDegreeLat,
				Elevation: 1500.0,
			},
			AbsoluteMicros: 1700000000000000 + int64(i)*stepMicros,
			RelativeMicros: int64(i) * stepMicros,
		}
	}
	return samples
}

// samplesAtOffsets places one sample per cumulative offset in meters north of
// the origin.
func samplesAtOffsets(offsets []float64, stepMicros int64) []FrameSample {
	samples := make([]FrameSample, len(offsets))
	for i, off := range offsets {
		samples[i] = FrameSample{
			Position: &Position{
				Lon:       14.0,
				Lat:       46.0 + off/metersPerDegreeLat,
				Elevation: 1500.0,
			},
			AbsoluteMicros: 1700000000000000 + int64(i)*stepMicros,
			RelativeMicros: int64(i) * stepMicros,
		}
	}
	return samples
}

func TestBuildRemovesAbsentPositions(t *testing.T) {
	samples := straightSamples(5, 2.0, 500000)
	withHole := append([]FrameSample(nil), samples...)
	withHole[2].Position = nil

	tr, err := Build(7, withHole, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, tr.Frames())
	assert.Equal(t, 1, tr.RemovedAbsent())
	assert.Equal(t, 0, tr.RemovedOutliers())

	// Frame ids renumber densely: the old frame 3 is now frame 2.
	assert.Equal(t, samples[3].RelativeMicros, tr.Sample(2).RelativeMicros)
	assert.Equal(t, samples[4].RelativeMicros, tr.Sample(3).RelativeMicros)
}

func TestBuildRemovesOutlierJumps(t *testing.T) {
	// Frame 0 sits 50 m before frame 1: an impossible jump between
	// consecutive captured frames, so the earlier frame goes.
	samples := samplesAtOffsets([]float64{0, 50, 55, 60}, 500000)

	tr, err := Build(7, samples, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, tr.Frames())
	assert.Equal(t, 1, tr.RemovedOutliers())
	assert.Equal(t, 0, tr.RemovedAbsent())
	// The kept track starts at the old frame 1.
	assert.Equal(t, int64(500000), tr.Sample(0).RelativeMicros)
}

func TestBuildRemovesSpikeAgainstAnchor(t *testing.T) {
	// A single-sample spike in the middle: both the spike and any frame
	// left stranded more than the threshold from the next kept frame go.
	samples := samplesAtOffsets([]float64{0, 5, 500, 10, 15}, 500000)

	tr, err := Build(7, samples, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, tr.Frames())
	assert.Equal(t, 1, tr.RemovedOutliers())
}

func TestCleaningIsIdempotent(t *testing.T) {
	samples := samplesAtOffsets([]float64{0, 50, 55, 60, 61}, 500000)
	first, err := Build(7, samples, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 1, first.RemovedOutliers())

	// Rebuilding from the kept frames removes nothing further.
	kept := make([]FrameSample, first.Frames())
	for i := range kept {
		kept[i] = first.Sample(i)
	}
	second, err := Build(7, kept, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Frames(), second.Frames())
	assert.Equal(t, 0, second.RemovedOutliers())
	assert.Equal(t, 0, second.RemovedAbsent())
}

func TestCleanedTrackHasBoundedSteps(t *testing.T) {
	samples := samplesAtOffsets([]float64{0, 3, 6, 120, 124, 128, 131}, 500000)
	cfg := DefaultConfig()

	tr, err := Build(7, samples, cfg)
	require.NoError(t, err)

	for i, d := range tr.Distances() {
		assert.LessOrEqualf(t, d, cfg.OutlierThresholdM, "step %d", i)
	}
}

func TestBuildAlignment(t *testing.T) {
	tr, err := Build(7, straightSamples(25, 2.0, 33366), DefaultConfig())
	require.NoError(t, err)

	n := tr.Frames()
	assert.Len(t, tr.Times(), n)
	assert.Len(t, tr.SpeedsMS(), n)
	assert.Len(t, tr.SpeedsKMH(), n)
	assert.Len(t, tr.Distances(), n-1)
	assert.Len(t, tr.Elevations(), n)
}

func TestConfigurableThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutlierThresholdM = 4.0

	tr, err := Build(7, samplesAtOffsets([]float64{0, 5, 10, 12}, 500000), cfg)
	require.NoError(t, err)

	// 5 m steps now count as jumps; only the trailing pair survives.
	assert.Equal(t, 2, tr.Frames())
	assert.Equal(t, 2, tr.RemovedOutliers())
}
