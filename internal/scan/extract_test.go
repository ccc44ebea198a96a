package scan

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoCommand(t *testing.T) {
	builder := &MockCommandBuilder{}
	e := &Extractor{Script: "./GPSExtractor/extractGPS.js", Builder: builder}

	out, err := e.ExtractVideo(Video{ID: 42, Chapters: 2, Dir: "/videos"}, "/geojson")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/geojson", "0042.geojson"), out)

	cmd := builder.LastCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "node", cmd.Name)
	assert.Equal(t, []string{
		"./GPSExtractor/extractGPS.js",
		filepath.Join("/geojson", "0042.geojson"),
		filepath.Join("/videos", "GH010042.MP4"),
		filepath.Join("/videos", "GH020042.MP4"),
	}, cmd.Args)
}

func TestExtractVideoFailure(t *testing.T) {
	builder := &MockCommandBuilder{
		ExecutorFactory: func(string, []string) *MockCommandExecutor {
			return &MockCommandExecutor{Output: []byte("no GPS stream"), Err: errors.New("exit status 1")}
		},
	}
	e := &Extractor{Script: "extract.js", Builder: builder}

	_, err := e.ExtractVideo(Video{ID: 7, Chapters: 1, Dir: "/videos"}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0007")
	assert.Contains(t, err.Error(), "no GPS stream")
}

func TestExtractAll(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "GH010001.MP4"))
	touch(t, filepath.Join(root, "GH010002.MP4"))
	touch(t, filepath.Join(root, "GH010003.MP4"))

	// Video 0002 fails, the other two extract.
	builder := &MockCommandBuilder{
		ExecutorFactory: func(name string, args []string) *MockCommandExecutor {
			if filepath.Base(args[1]) == "0002.geojson" {
				return &MockCommandExecutor{Err: errors.New("exit status 1")}
			}
			return &MockCommandExecutor{}
		},
	}
	e := &Extractor{Script: "extract.js", Builder: builder}

	report, err := e.ExtractAll(root, filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, report.Extracted)
	assert.Equal(t, []int{2}, report.Failed)
	assert.Len(t, builder.Commands, 3)
}
