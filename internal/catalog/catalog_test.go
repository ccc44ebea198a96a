package catalog

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/testutil"
)

const migrationsDir = "../../migrations"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp(migrationsDir))
	return db
}

func TestMigrateUpAndVersion(t *testing.T) {
	db := openTestDB(t)

	version, dirty, err := db.MigrateVersion(migrationsDir)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)

	// Running up again is a no-op.
	require.NoError(t, db.MigrateUp(migrationsDir))
}

func TestRecordAndLatestSummary(t *testing.T) {
	db := openTestDB(t)

	s := &TrackSummary{
		VideoID:           42,
		Frames:            1200,
		RemovedAbsent:     3,
		RemovedOutliers:   7,
		RemovedNoMovement: 40,
		DistanceM:         1534.2,
		MaxSpeedKMH:       61.5,
		MeanSpeedKMH:      28.3,
		P95SpeedKMH:       55.1,
	}
	require.NoError(t, db.RecordSummary(s))
	assert.NotEmpty(t, s.ID, "RecordSummary should assign an id")

	got, err := db.LatestSummary(42)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, 42, got.VideoID)
	assert.Equal(t, 1200, got.Frames)
	assert.Equal(t, 7, got.RemovedOutliers)
	assert.InDelta(t, 1534.2, got.DistanceM, 1e-9)
	assert.InDelta(t, 61.5, got.MaxSpeedKMH, 1e-9)
	assert.False(t, got.CreatedAt.IsZero(), "created_at should be set by the database")
}

func TestLatestSummaryMissingVideo(t *testing.T) {
	db := openTestDB(t)

	_, err := db.LatestSummary(9999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInterestingSummaries(t *testing.T) {
	db := openTestDB(t)

	fast := &TrackSummary{VideoID: 1, MaxSpeedKMH: 45, DistanceM: 900, RemovedOutliers: 2}
	slow := &TrackSummary{VideoID: 2, MaxSpeedKMH: 8, DistanceM: 900, RemovedOutliers: 2}
	short := &TrackSummary{VideoID: 3, MaxSpeedKMH: 45, DistanceM: 50, RemovedOutliers: 2}
	noisy := &TrackSummary{VideoID: 4, MaxSpeedKMH: 45, DistanceM: 900, RemovedOutliers: 31}
	for _, s := range []*TrackSummary{fast, slow, short, noisy} {
		require.NoError(t, db.RecordSummary(s))
	}

	got, err := db.InterestingSummaries(DefaultInterestRule())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].VideoID)
}

func TestInterestRuleBoundaries(t *testing.T) {
	rule := DefaultInterestRule()

	boundary := &TrackSummary{MaxSpeedKMH: 20.0, DistanceM: 200.0, RemovedOutliers: 30}
	assert.False(t, rule.Matches(boundary), "thresholds are strict")

	inside := &TrackSummary{MaxSpeedKMH: 20.01, DistanceM: 200.01, RemovedOutliers: 29}
	assert.True(t, rule.Matches(inside))
}

func TestSummarize(t *testing.T) {
	tr := testutil.MustBuildTrack(t, 17, testutil.StraightTrackSamples(21, 5.0, 500000))

	s := Summarize(tr)
	assert.Equal(t, 17, s.VideoID)
	assert.Equal(t, 21, s.Frames)
	assert.Equal(t, 0, s.RemovedAbsent)
	assert.Equal(t, 0, s.RemovedOutliers)
	assert.InDelta(t, 100.0, s.DistanceM, 0.1)

	// Constant-motion track: every windowed speed estimate ends up equal,
	// so mean, max and the 0.95 quantile all agree.
	assert.Greater(t, s.MaxSpeedKMH, 0.0)
	assert.InDelta(t, s.MaxSpeedKMH, s.MeanSpeedKMH, 1e-9)
	assert.InDelta(t, s.MaxSpeedKMH, s.P95SpeedKMH, 1e-9)
}

func TestSummarizeEmptyTrack(t *testing.T) {
	tr := testutil.MustBuildTrack(t, 5, nil)

	s := Summarize(tr)
	assert.Equal(t, 0, s.Frames)
	assert.Zero(t, s.MaxSpeedKMH)
	assert.Zero(t, s.MeanSpeedKMH)
	assert.Zero(t, s.P95SpeedKMH)
}
