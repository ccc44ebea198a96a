package track

import "math"

// HaversineM returns the great-circle distance in meters between two
// positions, using the given mean Earth radius. Elevation is ignored.
func HaversineM(a, b Position, earthRadiusM float64) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// PlanarCoords returns the track's positions flattened onto a local plane in
// meters. This is a per-track min/max linear scaling of longitude and
// latitude, not a true projection: the longitude span is measured along the
// latitude of the westmost frame, and vice versa. Adequate for rendering a
// single run, useless for anything else.
func (t *Track) PlanarCoords(cfg Config) (xs, ys []float64) {
	n := len(t.samples)
	xs = make([]float64, n)
	ys = make([]float64, n)
	if n == 0 {
		return xs, ys
	}

	minLon, maxLon := t.samples[0].Position.Lon, t.samples[0].Position.Lon
	minLat, maxLat := t.samples[0].Position.Lat, t.samples[0].Position.Lat
	var minLonIdx, minLatIdx int
	for i, s := range t.samples {
		p := s.Position
		if p.Lon < minLon {
			minLon, minLonIdx = p.Lon, i
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
		if p.Lat < minLat {
			minLat, minLatIdx = p.Lat, i
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
	}

	refLat := t.samples[minLonIdx].Position.Lat
	refLon := t.samples[minLatIdx].Position.Lon
	dLonM := HaversineM(
		Position{Lon: minLon, Lat: refLat},
		Position{Lon: maxLon, Lat: refLat}, cfg.EarthRadiusM)
	dLatM := HaversineM(
		Position{Lon: refLon, Lat: minLat},
		Position{Lon: refLon, Lat: maxLat}, cfg.EarthRadiusM)

	lonSpan := maxLon - minLon
	latSpan := maxLat - minLat
	for i, s := range t.samples {
		if lonSpan > 0 {
			xs[i] = (s.Position.Lon - minLon) / lonSpan * dLonM
		}
		if latSpan > 0 {
			ys[i] = (s.Position.Lat - minLat) / latSpan * dLatM
		}
	}
	return xs, ys
}
