// extract-gps walks a directory of GoPro recordings and runs the external
// GPS extraction tool for every chaptered video, producing one geojson file
// per video id.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/scan"
)

func main() {
	videoDir := flag.String("videos", ".", "Directory containing GoPro .MP4 chapter files")
	outputDir := flag.String("out", "geojson", "Output directory for .geojson files")
	script := flag.String("script", "./GPSExtractor/extractGPS.js", "Path to the GPS extraction script")
	flag.Parse()

	extractor := scan.NewExtractor(*script)
	report, err := extractor.ExtractAll(*videoDir, *outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan error: %v\n", err)
		os.Exit(1)
	}

	if len(report.Failed) == 0 {
		fmt.Printf("all data successfully extracted (%d videos)\n", len(report.Extracted))
		return
	}

	fmt.Fprintln(os.Stderr, "data extraction failed for videos:")
	for _, id := range report.Failed {
		fmt.Fprintf(os.Stderr, "  %04d\n", id)
	}
	os.Exit(1)
}
