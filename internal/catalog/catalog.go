// Package catalog persists per-video track summaries in a sqlite database so
// a season's worth of runs can be filtered without re-parsing every geojson
// file. The schema is managed through golang-migrate; see the migrations
// directory at the repository root.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// Open opens (creating if necessary) the catalog database at path. The
// schema is not applied here; call MigrateUp before recording summaries.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return &DB{db}, nil
}

// TrackSummary is one row of the track_summaries table: the headline numbers
// of a processed track, keyed by the four-digit video id.
type TrackSummary struct {
	ID                string
	VideoID           int
	Frames            int
	RemovedAbsent     int
	RemovedOutliers   int
	RemovedNoMovement int
	DistanceM         float64
	MaxSpeedKMH       float64
	MeanSpeedKMH      float64
	P95SpeedKMH       float64
	CreatedAt         time.Time
}

// RecordSummary inserts a summary row. A missing ID is filled in with a
// fresh UUID. Re-recording a video id adds a new row rather than replacing
// the old one, so a summary's history survives re-processing.
func (db *DB) RecordSummary(s *TrackSummary) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := db.Exec(`
		INSERT INTO track_summaries (
			id, video_id, frames,
			removed_absent, removed_outliers, removed_no_movement,
			distance_m, max_speed_kmh, mean_speed_kmh, p95_speed_kmh
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.VideoID, s.Frames,
		s.RemovedAbsent, s.RemovedOutliers, s.RemovedNoMovement,
		s.DistanceM, s.MaxSpeedKMH, s.MeanSpeedKMH, s.P95SpeedKMH,
	)
	if err != nil {
		return fmt.Errorf("failed to record summary for video %04d: %w", s.VideoID, err)
	}
	return nil
}

// LatestSummary returns the most recently recorded summary for a video id,
// or sql.ErrNoRows if the video has never been summarized.
func (db *DB) LatestSummary(videoID int) (*TrackSummary, error) {
	row := db.QueryRow(`
		SELECT id, video_id, frames,
		       removed_absent, removed_outliers, removed_no_movement,
		       distance_m, max_speed_kmh, mean_speed_kmh, p95_speed_kmh,
		       created_at
		FROM track_summaries
		WHERE video_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, videoID)
	return scanSummary(row)
}

// InterestingSummaries returns the latest summary of every video that
// passes the given interest rule, ordered by video id.
func (db *DB) InterestingSummaries(rule InterestRule) ([]TrackSummary, error) {
	rows, err := db.Query(`
		SELECT id, video_id, frames,
		       removed_absent, removed_outliers, removed_no_movement,
		       distance_m, max_speed_kmh, mean_speed_kmh, p95_speed_kmh,
		       created_at
		FROM track_summaries
		WHERE id IN (
			SELECT id FROM track_summaries ts
			WHERE created_at = (
				SELECT MAX(created_at) FROM track_summaries
				WHERE video_id = ts.video_id
			)
		)
		ORDER BY video_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var out []TrackSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		if rule.Matches(s) {
			out = append(out, *s)
		}
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*TrackSummary, error) {
	var s TrackSummary
	err := row.Scan(
		&s.ID, &s.VideoID, &s.Frames,
		&s.RemovedAbsent, &s.RemovedOutliers, &s.RemovedNoMovement,
		&s.DistanceM, &s.MaxSpeedKMH, &s.MeanSpeedKMH, &s.P95SpeedKMH,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// InterestRule decides which summarized videos are worth keeping around.
// A video qualifies when it was fast enough, long enough, and its GPS data
// was not dominated by outliers.
type InterestRule struct {
	MinMaxSpeedKMH float64
	MinDistanceM   float64
	MaxOutliers    int
}

func DefaultInterestRule() InterestRule {
	return InterestRule{
		MinMaxSpeedKMH: 20.0,
		MinDistanceM:   200.0,
		MaxOutliers:    30,
	}
}

func (r InterestRule) Matches(s *TrackSummary) bool {
	return s.MaxSpeedKMH > r.MinMaxSpeedKMH &&
		s.DistanceM > r.MinDistanceM &&
		s.RemovedOutliers < r.MaxOutliers
}
