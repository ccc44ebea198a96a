package catalog

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// Summarize reduces a processed track to its catalog row. Speed statistics
// are computed over the per-frame km/h series; an empty track yields zeros.
func Summarize(tr *track.Track) TrackSummary {
	s := TrackSummary{
		VideoID:           tr.VideoID(),
		Frames:            tr.Frames(),
		RemovedAbsent:     tr.RemovedAbsent(),
		RemovedOutliers:   tr.RemovedOutliers(),
		RemovedNoMovement: tr.RemovedNoMovement(),
		DistanceM:         tr.TotalDistance(),
	}

	speeds := tr.SpeedsKMH()
	if len(speeds) == 0 {
		return s
	}

	s.MeanSpeedKMH = stat.Mean(speeds, nil)
	for _, v := range speeds {
		if v > s.MaxSpeedKMH {
			s.MaxSpeedKMH = v
		}
	}

	sort.Float64s(speeds)
	s.P95SpeedKMH = stat.Quantile(0.95, stat.Empirical, speeds, nil)
	return s
}
