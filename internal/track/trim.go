package track

import (
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/monitoring"
)

// TrimNoMovement removes stretches where the skier is effectively standing
// still: any frame whose summed movement over [i-FrameRange, i+FrameRange]
// falls below MinDistanceM. The timestamps of every kept frame after an
// excised stretch are shifted back by the removed duration, so the remaining
// timeline has no discontinuity.
//
// Frames within FrameRange of either end are never evaluated and never
// re-based; the window cannot be centered on them.
//
// Must be called after Build and before any resampling.
func (t *Track) TrimNoMovement(cfg TrimConfig) error {
	n := len(t.samples)
	fr := cfg.FrameRange
	if fr < 1 || n < 2 {
		return nil
	}

	marked := make([]bool, n)
	var removedMicros int64
	for i := fr; i < n-fr; i++ {
		var moved float64
		hi := min(i+fr, len(t.distanceMeters)-1)
		for j := i - fr; j <= hi; j++ {
			moved += t.distanceMeters[j]
		}

		if moved < cfg.MinDistanceM {
			marked[i] = true
			removedMicros += t.samples[i+1].RelativeMicros - t.samples[i].RelativeMicros
			continue
		}

		t.samples[i].AbsoluteMicros -= removedMicros
		t.samples[i].RelativeMicros -= removedMicros
		t.timeSeconds[i] -= float64(removedMicros) / 1000.0
	}

	removed := 0
	keptSamples := t.samples[:0]
	keptTimes := t.timeSeconds[:0]
	keptSpeedMS := t.speedMS[:0]
	keptSpeedKMH := t.speedKMH[:0]
	keptDistances := t.distanceMeters[:0]
	for i := 0; i < n; i++ {
		if marked[i] {
			removed++
			continue
		}
		keptSamples = append(keptSamples, t.samples[i])
		keptTimes = append(keptTimes, t.timeSeconds[i])
		keptSpeedMS = append(keptSpeedMS, t.speedMS[i])
		keptSpeedKMH = append(keptSpeedKMH, t.speedKMH[i])
		if i < n-1 {
			keptDistances = append(keptDistances, t.distanceMeters[i])
		}
	}
	t.samples = keptSamples
	t.timeSeconds = keptTimes
	t.speedMS = keptSpeedMS
	t.speedKMH = keptSpeedKMH
	t.distanceMeters = keptDistances
	t.removedNoMovement += removed

	if err := t.checkIntegrity("movement trim"); err != nil {
		return err
	}

	if removed > 0 {
		monitoring.Logf("track %04d: trimmed %d no-movement frames (%.1f ms)",
			t.videoID, removed, float64(removedMicros)/1000.0)
	}
	return nil
}
