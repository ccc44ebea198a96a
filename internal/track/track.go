// Package track implements the GPS trajectory pipeline: cleaning raw
// per-video-frame samples, estimating smoothed speeds, optionally trimming
// stretches without movement, and resampling the result onto a fixed-cadence
// frame grid for the renderers.
package track

// Position is a single GPS fix. Longitude and latitude are in degrees,
// elevation in meters.
type Position struct {
	Lon       float64
	Lat       float64
	Elevation float64
}

// FrameSample is one raw per-video-frame sample as produced by the GPS
// extractor. Position is nil when the receiver reported no fix for that frame.
type FrameSample struct {
	Position       *Position
	AbsoluteMicros int64
	RelativeMicros int64
}

// Track is the cleaned, speed-annotated trajectory of one video. It is built
// once by Build, mutated only by the pipeline stages in their fixed order, and
// read-only afterwards. All derived arrays are parallel to the kept samples;
// distanceMeters has one fewer entry (distance from frame i to i+1).
type Track struct {
	videoID int

	samples []FrameSample

	removedAbsent     int
	removedOutliers   int
	removedNoMovement int

	// Derived per-frame arrays, populated by the speed estimator. Note the
	// time scale: relative microseconds divided by 1000, kept as the
	// established contract for all downstream cadence math.
	timeSeconds    []float64
	distanceMeters []float64
	speedMS        []float64
	speedKMH       []float64
}

// VideoID returns the 4-digit id parsed from the source identifier.
func (t *Track) VideoID() int { return t.videoID }

// Frames returns the number of kept frames.
func (t *Track) Frames() int { return len(t.samples) }

// RemovedAbsent returns the number of frames removed for missing positions.
func (t *Track) RemovedAbsent() int { return t.removedAbsent }

// RemovedOutliers returns the number of frames removed as position jumps.
func (t *Track) RemovedOutliers() int { return t.removedOutliers }

// RemovedNoMovement returns the number of frames removed by the movement
// trimmer.
func (t *Track) RemovedNoMovement() int { return t.removedNoMovement }

// Sample returns the kept frame at index i.
func (t *Track) Sample(i int) FrameSample { return t.samples[i] }

// TimeAt returns the derived time value of frame i.
func (t *Track) TimeAt(i int) float64 { return t.timeSeconds[i] }

// SpeedKMHAt returns the windowed speed of frame i in km/h.
func (t *Track) SpeedKMHAt(i int) float64 { return t.speedKMH[i] }

// SpeedMSAt returns the windowed speed of frame i in m/s.
func (t *Track) SpeedMSAt(i int) float64 { return t.speedMS[i] }

// Times returns a copy of the per-frame time values.
func (t *Track) Times() []float64 { return copyFloats(t.timeSeconds) }

// Distances returns a copy of the per-step distances in meters. The slice has
// Frames()-1 entries; entry i is the distance from frame i to frame i+1.
func (t *Track) Distances() []float64 { return copyFloats(t.distanceMeters) }

// SpeedsMS returns a copy of the per-frame windowed speeds in m/s.
func (t *Track) SpeedsMS() []float64 { return copyFloats(t.speedMS) }

// SpeedsKMH returns a copy of the per-frame windowed speeds in km/h.
func (t *Track) SpeedsKMH() []float64 { return copyFloats(t.speedKMH) }

// Elevations returns a copy of the per-frame elevations in meters.
func (t *Track) Elevations() []float64 {
	out := make([]float64, len(t.samples))
	for i, s := range t.samples {
		out[i] = s.Position.Elevation
	}
	return out
}

// TotalDistance returns the summed per-step distance in meters.
func (t *Track) TotalDistance() float64 {
	var total float64
	for _, d := range t.distanceMeters {
		total += d
	}
	return total
}

func copyFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
