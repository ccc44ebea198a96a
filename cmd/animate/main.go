// animate renders a geojson track as a sequence of PNG frames: the
// trajectory grows point by point, colored by speed, while the camera orbits
// the scene. Assemble the frames into a video with any external encoder.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/config"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/geojson"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/render"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

func main() {
	geojsonPath := flag.String("geojson", "", "Path to the .geojson track file (required)")
	outputDir := flag.String("out", "frames", "Output directory for the PNG frames")
	fps := flag.Float64("fps", 30.0, "Frame rate of the output animation")
	speedup := flag.Float64("speedup", 1.0, "How many times to speed up the track")
	revolution := flag.Float64("revolution", 1.0, "Duration of one camera rotation in seconds")
	trim := flag.Bool("trim", false, "Remove no-movement periods before rendering")
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
	cfg := tuning.PipelineConfig()

	src, err := geojson.Load(*geojsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load error: %v\n", err)
		os.Exit(1)
	}
	tr, err := track.Build(src.VideoID, src.Samples, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline error: %v\n", err)
		os.Exit(1)
	}
	if *trim {
		if err := tr.TrimNoMovement(tuning.TrimConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "trim error: %v\n", err)
			os.Exit(1)
		}
	}

	animCfg := render.DefaultAnimationConfig()
	animCfg.Resample = track.ResampleConfig{
		OutputFPS:           *fps,
		SpeedupFactor:       *speedup,
		RevolutionDurationS: *revolution,
	}

	animator, err := render.NewAnimator(tr, cfg, animCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "animation error: %v\n", err)
		os.Exit(1)
	}
	n, err := animator.RenderFrames(*outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "animation error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d frames to %s\n", n, *outputDir)
}
