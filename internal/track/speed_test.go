package track

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeScale(t *testing.T) {
	// The derived time value is relative microseconds over 1000. The scale
	// is part of the downstream contract and must not be "fixed".
	tr, err := Build(7, straightSamples(3, 5.0, 500000), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 500, 1000}, tr.Times())
}

func TestWindowedSpeed(t *testing.T) {
	// Three frames 5 m apart, 0.5 s of stamp between them. Every frame's
	// window covers the whole track: 10 m over a time value of 1000.
	tr, err := Build(7, straightSamples(3, 5.0, 500000), DefaultConfig())
	require.NoError(t, err)

	for i := 0; i < tr.Frames(); i++ {
		assert.InDelta(t, 0.01, tr.SpeedMSAt(i), 1e-6, "frame %d", i)
		assert.InDelta(t, 0.036, tr.SpeedKMHAt(i), 1e-6, "frame %d", i)
	}
}

func TestWindowedSpeedPartialWindows(t *testing.T) {
	// 30 frames, 1 m and 100000 micros apart. Interior frames see the full
	// +/-10 window; edge frames a clipped one. With uniform spacing every
	// window still averages to the same speed.
	tr, err := Build(7, straightSamples(30, 1.0, 100000), DefaultConfig())
	require.NoError(t, err)

	// Frame 15: window [5, 25), distance 19 m, time 100*(24-5)=1900.
	assert.InDelta(t, 19.0/1900.0, tr.SpeedMSAt(15), 1e-9)
	// Frame 0: window [0, 10), distance 9 m, time 900.
	assert.InDelta(t, 9.0/900.0, tr.SpeedMSAt(0), 1e-9)
	// Frame 29: window [19, 30), distance 10 m, time 1000.
	assert.InDelta(t, 10.0/1000.0, tr.SpeedMSAt(29), 1e-9)
}

func TestKmhIsScaledMs(t *testing.T) {
	tr, err := Build(7, straightSamples(12, 3.0, 40000), DefaultConfig())
	require.NoError(t, err)

	for i := 0; i < tr.Frames(); i++ {
		assert.InDelta(t, tr.SpeedMSAt(i)*3.6, tr.SpeedKMHAt(i), 1e-12)
	}
}

func TestUndefinedSpeed(t *testing.T) {
	t.Run("zero elapsed window", func(t *testing.T) {
		samples := straightSamples(3, 5.0, 500000)
		for i := range samples {
			samples[i].RelativeMicros = 0 // all frames share one timestamp
		}
		_, err := Build(7, samples, DefaultConfig())
		require.Error(t, err)

		var undefined *UndefinedSpeedError
		require.True(t, errors.As(err, &undefined))
		assert.Equal(t, 0, undefined.Frame)
	})

	t.Run("single frame track", func(t *testing.T) {
		_, err := Build(7, straightSamples(1, 0, 500000), DefaultConfig())
		var undefined *UndefinedSpeedError
		assert.True(t, errors.As(err, &undefined))
	})
}

func TestEmptyTrackBuilds(t *testing.T) {
	tr, err := Build(7, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Frames())
	assert.Empty(t, tr.Times())
}

func TestAccessorsReturnCopies(t *testing.T) {
	tr, err := Build(7, straightSamples(5, 2.0, 500000), DefaultConfig())
	require.NoError(t, err)

	times := tr.Times()
	times[0] = -1
	assert.Equal(t, 0.0, tr.TimeAt(0), "mutating the returned slice must not reach the track")

	speeds := tr.SpeedsKMH()
	speeds[0] = -1
	assert.NotEqual(t, -1.0, tr.SpeedKMHAt(0))
}
