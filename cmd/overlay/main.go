// overlay maps a geojson track onto a video's frame clock and emits one
// speed reading per video frame as CSV, ready to be burned into the footage
// by an external compositing tool.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/config"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/geojson"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/render"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

func main() {
	geojsonPath := flag.String("geojson", "", "Path to the .geojson track file (required)")
	fps := flag.Float64("fps", 30.0, "Frame rate of the video being overlaid")
	frames := flag.Int("frames", 0, "Number of video frames to emit (0 = cover the whole track)")
	outputPath := flag.String("out", "-", "Output CSV path, - for stdout")
	tuningPath := flag.String("tuning", "", "Optional JSON tuning file for pipeline thresholds")
	flag.Parse()

	if *geojsonPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	var tuning *config.Tuning
	if *tuningPath != "" {
		var err error
		if tuning, err = config.Load(*tuningPath); err != nil {
			fmt.Fprintf(os.Stderr, "tuning error: %v\n", err)
			os.Exit(1)
		}
	}

	src, err := geojson.Load(*geojsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load error: %v\n", err)
		os.Exit(1)
	}
	tr, err := track.Build(src.VideoID, src.Samples, tuning.PipelineConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline error: %v\n", err)
		os.Exit(1)
	}

	overlay, err := render.NewSpeedOverlay(tr, *fps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlay error: %v\n", err)
		os.Exit(1)
	}

	frameCount := *frames
	if frameCount <= 0 {
		times := tr.Times()
		lastSeconds := times[len(times)-1] / 1000.0
		frameCount = int(math.Ceil(lastSeconds**fps)) + 1
	}

	out := os.Stdout
	if *outputPath != "-" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "output error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "frame,speed_kmh")
	for frame := 0; frame < frameCount; frame++ {
		fmt.Fprintf(w, "%d,%.2f\n", frame, overlay.SpeedAt(frame))
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "output error: %v\n", err)
		os.Exit(1)
	}
}
