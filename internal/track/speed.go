package track

// estimateSpeeds derives the per-frame time values, the per-step distances,
// and a windowed speed estimate for every kept frame.
//
// The time value is relative microseconds divided by 1000. The label says
// seconds but the scale is milliseconds; every downstream consumer was built
// against this scale, so it is preserved rather than corrected.
//
// The speed at frame i is averaged over the neighborhood of up to
// SpeedWindowHalfWidth frames on each side, which smooths single-sample GPS
// noise: summed step distance over the window divided by elapsed window time.
func (t *Track) estimateSpeeds(cfg Config) error {
	n := len(t.samples)

	t.timeSeconds = make([]float64, n)
	for i, s := range t.samples {
		t.timeSeconds[i] = float64(s.RelativeMicros) / 1000.0
	}

	if n > 0 {
		t.distanceMeters = make([]float64, n-1)
		for i := 0; i < n-1; i++ {
			t.distanceMeters[i] = HaversineM(
				*t.samples[i].Position, *t.samples[i+1].Position, cfg.EarthRadiusM)
		}
	} else {
		t.distanceMeters = nil
	}

	t.speedMS = make([]float64, n)
	t.speedKMH = make([]float64, n)
	w := cfg.SpeedWindowHalfWidth
	for i := 0; i < n; i++ {
		lo := max(i-w, 0)
		hi := min(i+w, n)

		var totalDistance float64
		for j := lo; j <= hi-2; j++ {
			totalDistance += t.distanceMeters[j]
		}
		totalTime := t.timeSeconds[hi-1] - t.timeSeconds[lo]
		if totalTime == 0 {
			return &UndefinedSpeedError{Frame: i}
		}

		t.speedMS[i] = totalDistance / totalTime
		t.speedKMH[i] = t.speedMS[i] * 3.6
	}

	return nil
}
