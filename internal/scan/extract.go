package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/monitoring"
)

// Extractor invokes the external GPS extraction tool for discovered videos.
// The tool receives the output geojson path followed by the chapter files in
// playback order.
type Extractor struct {
	// Script is the path to the extraction script run through node.
	Script string

	// Builder creates the commands. Defaults to real execution.
	Builder CommandBuilder
}

func NewExtractor(script string) *Extractor {
	return &Extractor{Script: script, Builder: &RealCommandBuilder{}}
}

// ExtractVideo runs the extraction tool for one video and returns the path
// of the written geojson file.
func (e *Extractor) ExtractVideo(v Video, outputDir string) (string, error) {
	outputFile := filepath.Join(outputDir, v.GeojsonName())

	args := append([]string{e.Script, outputFile}, v.ChapterPaths()...)
	cmd := e.Builder.BuildCommand("node", args...)
	if out, err := cmd.Run(); err != nil {
		return "", fmt.Errorf("extraction failed for video %04d: %w (%s)", v.ID, err, out)
	}
	return outputFile, nil
}

// ExtractReport lists which video ids extracted cleanly and which failed.
type ExtractReport struct {
	Extracted []int
	Failed    []int
}

// ExtractAll discovers every video under videoRoot and runs the extraction
// tool for each, writing geojson files into outputDir. Per-video failures are
// collected in the report rather than aborting the run.
func (e *Extractor) ExtractAll(videoRoot, outputDir string) (*ExtractReport, error) {
	videos, err := DiscoverVideos(videoRoot)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	report := &ExtractReport{}
	for i, v := range videos {
		monitoring.Logf("extracting video %04d (%d/%d, %d chapters)", v.ID, i+1, len(videos), v.Chapters)
		if _, err := e.ExtractVideo(v, outputDir); err != nil {
			monitoring.Logf("%v", err)
			report.Failed = append(report.Failed, v.ID)
			continue
		}
		report.Extracted = append(report.Extracted, v.ID)
	}
	return report, nil
}
