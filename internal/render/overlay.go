// Package render turns a processed track into visual output: per-video-frame
// speed overlays and a rotating-camera animation of the trajectory.
package render

import (
	"errors"
	"fmt"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// SpeedOverlay answers "what speed should be stamped on video frame k". It
// walks the track once, monotonically, so stamping a full video is linear in
// the track length. Query frames in increasing order.
type SpeedOverlay struct {
	times  []float64
	speeds []float64
	fps    float64
	idx    int
}

// NewSpeedOverlay prepares an overlay for a video recorded at fps frames per
// second. The track must have at least one frame.
func NewSpeedOverlay(tr *track.Track, fps float64) (*SpeedOverlay, error) {
	if fps <= 0 {
		return nil, errors.New("render: video fps must be positive")
	}
	if tr.Frames() == 0 {
		return nil, errors.New("render: cannot overlay an empty track")
	}
	return &SpeedOverlay{
		times:  tr.Times(),
		speeds: tr.SpeedsKMH(),
		fps:    fps,
	}, nil
}

// SpeedAt returns the speed in km/h current at the given video frame. The
// video clock is converted to the track's time scale before comparison; the
// GPS sample pointer only moves forward.
func (o *SpeedOverlay) SpeedAt(videoFrame int) float64 {
	clock := float64(videoFrame) / o.fps * 1000.0
	for o.idx < len(o.times)-1 && o.times[o.idx+1] < clock {
		o.idx++
	}
	return o.speeds[o.idx]
}

// Label formats the speed for the given video frame the way it is drawn onto
// the video.
func (o *SpeedOverlay) Label(videoFrame int) string {
	return fmt.Sprintf("%.0f kmh", o.SpeedAt(videoFrame))
}
