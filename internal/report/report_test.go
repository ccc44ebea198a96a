package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/testutil"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

func TestRender(t *testing.T) {
	tr := testutil.MustBuildTrack(t, 12, testutil.StraightTrackSamples(30, 5.0, 500000))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, track.DefaultConfig()))

	html := buf.String()
	assert.Contains(t, html, "Video 0012")
	assert.Contains(t, html, "Trajectory")
	assert.Contains(t, html, "speed (km/h)")
}

func TestRenderEmptyTrack(t *testing.T) {
	tr := testutil.MustBuildTrack(t, 1, nil)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, track.DefaultConfig()))
	assert.NotEmpty(t, buf.String())
}

func TestWriteFile(t *testing.T) {
	tr := testutil.MustBuildTrack(t, 7, testutil.StraightTrackSamples(10, 5.0, 500000))

	path := filepath.Join(t.TempDir(), "0007.html")
	require.NoError(t, WriteFile(path, tr, track.DefaultConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Video 0007"))
}
