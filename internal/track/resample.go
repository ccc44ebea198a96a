package track

import (
	"errors"
	"math"
)

// ResampleConfig maps the variable-rate track onto a fixed output cadence.
type ResampleConfig struct {
	// OutputFPS is the frame rate of the rendered output.
	OutputFPS float64

	// SpeedupFactor compresses track time: 2 plays the run at double speed.
	SpeedupFactor float64

	// RevolutionDurationS is the closing hold, expressed as the period of
	// one camera rotation. The resampler only uses it as a duration; the
	// renderer decides what to do with the rotation itself.
	RevolutionDurationS float64
}

// Bucket is the group of consecutive source frames that fall into one output
// frame. The last member is the representative: it answers "how much of the
// trajectory is visible by this output frame" in O(1).
type Bucket struct {
	Frames []int
}

// Representative returns the bucket's representative source frame id.
func (b Bucket) Representative() int { return b.Frames[len(b.Frames)-1] }

// BucketSequence is the full fixed-cadence resampling of one track: the
// walked buckets followed by HoldBuckets duplicates of the final bucket.
// It is never mutated after construction.
type BucketSequence struct {
	Buckets []Bucket

	// HoldBuckets is the length of the duplicated tail at the end of
	// Buckets, added so the final state persists for the hold period.
	HoldBuckets int
}

// ErrEmptyTrack is returned when resampling a track with no frames.
var ErrEmptyTrack = errors.New("track: cannot resample an empty track")

// Resample walks the track's frames in order and groups them into buckets of
// secondsPerOutputFrame = SpeedupFactor/OutputFPS. When a frame crosses the
// current bucket's boundary, a new bucket opens seeded with the previous frame
// index, so no bucket is ever empty even across windows with no source frames;
// that seed frame intentionally appears in two adjacent buckets. Every source
// frame lands in exactly one bucket's tail, in increasing order, covering the
// whole timeline.
//
// Resample never mutates the track, so concurrent calls with different
// cadences are safe once the pipeline stages are done.
func (t *Track) Resample(cfg ResampleConfig) (*BucketSequence, error) {
	n := len(t.samples)
	if n == 0 {
		return nil, ErrEmptyTrack
	}
	if cfg.OutputFPS <= 0 || cfg.SpeedupFactor <= 0 {
		return nil, errors.New("track: output fps and speedup factor must be positive")
	}

	secondsPerFrame := cfg.SpeedupFactor / cfg.OutputFPS

	buckets := []Bucket{{Frames: []int{0}}}
	currentTime := t.timeSeconds[0]
	for i := 1; i < n; i++ {
		ti := t.timeSeconds[i]
		if ti < currentTime+secondsPerFrame {
			last := len(buckets) - 1
			buckets[last].Frames = append(buckets[last].Frames, i)
			continue
		}
		for ti >= currentTime+secondsPerFrame {
			buckets = append(buckets, Bucket{Frames: []int{max(i-1, 0)}})
			currentTime += secondsPerFrame
		}
		last := len(buckets) - 1
		buckets[last].Frames = append(buckets[last].Frames, i)
	}

	hold := int(math.Round(cfg.RevolutionDurationS * cfg.OutputFPS))
	final := buckets[len(buckets)-1]
	for i := 0; i < hold; i++ {
		dup := Bucket{Frames: append([]int(nil), final.Frames...)}
		buckets = append(buckets, dup)
	}

	return &BucketSequence{Buckets: buckets, HoldBuckets: hold}, nil
}

// Len returns the number of output frames, hold tail included.
func (s *BucketSequence) Len() int { return len(s.Buckets) }
