package track

// Config holds the tuning parameters for the cleaning and speed-estimation
// stages. Thresholds are named here rather than embedded in the algorithms so
// tests can substitute them.
type Config struct {
	// EarthRadiusM is the mean Earth radius used by the haversine distance.
	EarthRadiusM float64

	// OutlierThresholdM is the maximum plausible distance between two
	// consecutive frames; a larger jump marks the earlier frame as an
	// outlier.
	OutlierThresholdM float64

	// SpeedWindowHalfWidth is the number of frames on each side of a frame
	// included in its windowed speed estimate.
	SpeedWindowHalfWidth int
}

// DefaultConfig returns the production parameters. The outlier threshold
// assumes roughly one sample per video frame, so 20 m between consecutive
// frames is far beyond any plausible skiing speed.
func DefaultConfig() Config {
	return Config{
		EarthRadiusM:         6373000.0,
		OutlierThresholdM:    20.0,
		SpeedWindowHalfWidth: 10,
	}
}

// TrimConfig holds the parameters of the optional no-movement trimmer.
type TrimConfig struct {
	// FrameRange is the window half-width: frame i is judged by the summed
	// movement over [i-FrameRange, i+FrameRange].
	FrameRange int

	// MinDistanceM is the minimum summed movement over the window for a
	// frame to be kept.
	MinDistanceM float64
}

// DefaultTrimConfig returns the trimmer parameters used by the renderers.
func DefaultTrimConfig() TrimConfig {
	return TrimConfig{
		FrameRange:   10,
		MinDistanceM: 3.0,
	}
}
