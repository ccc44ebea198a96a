package track

import (
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/monitoring"
)

// Build runs the cleaning and speed-estimation stages over the raw samples
// and returns the resulting track. There is no partial-success mode: either a
// fully cleaned, speed-annotated track comes back, or an error and no track.
//
// A FrameSample carries its position and both timestamps in one value, so the
// cleaning passes cannot misalign them; the integrity check guards the
// derived arrays, which are the ones a buggy stage could desynchronize.
func Build(videoID int, samples []FrameSample, cfg Config) (*Track, error) {
	t := &Track{
		videoID: videoID,
		samples: append([]FrameSample(nil), samples...),
	}

	t.removeAbsent()
	t.removeOutliers(cfg)

	if err := t.estimateSpeeds(cfg); err != nil {
		return nil, err
	}
	if err := t.checkIntegrity("speed estimation"); err != nil {
		return nil, err
	}

	monitoring.Logf("track %04d: %d frames kept (%d absent, %d outliers removed)",
		videoID, t.Frames(), t.removedAbsent, t.removedOutliers)

	return t, nil
}

// checkIntegrity verifies that every derived array is aligned with the kept
// samples: one entry per frame, except the per-step distances which have one
// fewer. A mismatch means the named stage corrupted the parallel structure.
func (t *Track) checkIntegrity(stage string) error {
	n := len(t.samples)
	if len(t.timeSeconds) != n {
		return &DataIntegrityError{Stage: stage, Expected: n, Actual: len(t.timeSeconds)}
	}
	if len(t.speedMS) != n {
		return &DataIntegrityError{Stage: stage, Expected: n, Actual: len(t.speedMS)}
	}
	if len(t.speedKMH) != n {
		return &DataIntegrityError{Stage: stage, Expected: n, Actual: len(t.speedKMH)}
	}
	wantDist := 0
	if n > 0 {
		wantDist = n - 1
	}
	if len(t.distanceMeters) != wantDist {
		return &DataIntegrityError{Stage: stage, Expected: wantDist, Actual: len(t.distanceMeters)}
	}
	return nil
}
