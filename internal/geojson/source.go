// Package geojson loads the raw per-frame GPS samples that the external
// extraction tool writes for each GoPro video. One geojson file holds one
// video's track: a geometry.coordinates list with a [lon, lat, elevation]
// entry (or null) per video frame and two parallel microsecond timestamp
// lists in properties.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// Sentinel errors for the three ways loading a source can fail. Callers
// match with errors.Is; none of them is retried internally.
var (
	// ErrInvalidSourceIdentifier means the path does not end in a 4-digit
	// video id plus the .geojson extension.
	ErrInvalidSourceIdentifier = errors.New("geojson: invalid source identifier")

	// ErrSourceUnavailable means the file could not be read.
	ErrSourceUnavailable = errors.New("geojson: source unavailable")

	// ErrMalformedSource means the file was read but its structure does not
	// match the extractor's output contract.
	ErrMalformedSource = errors.New("geojson: malformed source")
)

// Source identifiers must end in exactly four digits plus the extension,
// e.g. "rides/2023/0042.geojson". The digits are the GoPro video id.
var sourcePattern = regexp.MustCompile(`.*/[0-9]{4}\.geojson$`)

// Source is one fully loaded raw track. Samples are in recording order, one
// per captured video frame, and may contain absent positions; cleaning is the
// pipeline's job, not the loader's.
type Source struct {
	Path    string
	VideoID int
	Samples []track.FrameSample
}

// document mirrors the extractor's geojson structure.
type document struct {
	Geometry struct {
		Coordinates []*[3]float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		AbsoluteUtcMicroSec []int64 `json:"AbsoluteUtcMicroSec"`
		RelativeUtcMicroSec []int64 `json:"RelativeUtcMicroSec"`
	} `json:"properties"`
}

// ParseVideoID validates the source identifier and returns the embedded
// 4-digit video id.
func ParseVideoID(path string) (int, error) {
	if !sourcePattern.MatchString(path) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSourceIdentifier, path)
	}
	id, err := strconv.Atoi(path[len(path)-12 : len(path)-8])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSourceIdentifier, path)
	}
	return id, nil
}

// Load validates the identifier, reads the file, and produces the complete
// raw sample sequence. The load is atomic: either every frame is returned or
// an error is, never a partial track.
func Load(path string) (*Source, error) {
	videoID, err := ParseVideoID(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	coords := doc.Geometry.Coordinates
	abs := doc.Properties.AbsoluteUtcMicroSec
	rel := doc.Properties.RelativeUtcMicroSec
	if len(abs) != len(coords) || len(rel) != len(coords) {
		return nil, fmt.Errorf("%w: %d coordinates, %d absolute timestamps, %d relative timestamps",
			ErrMalformedSource, len(coords), len(abs), len(rel))
	}

	samples := make([]track.FrameSample, len(coords))
	for i, c := range coords {
		samples[i] = track.FrameSample{
			AbsoluteMicros: abs[i],
			RelativeMicros: rel[i],
		}
		if c != nil {
			samples[i].Position = &track.Position{
				Lon:       c[0],
				Lat:       c[1],
				Elevation: c[2],
			}
		}
	}

	return &Source{Path: path, VideoID: videoID, Samples: samples}, nil
}
