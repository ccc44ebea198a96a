// Command skiing-analysis inspects one extracted geojson track: it runs the
// trajectory pipeline, prints the headline numbers, and optionally writes an
// HTML report with the speed profile and the flattened trajectory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/config"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/geojson"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/report"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/units"
)

type options struct {
	tuningPath string
	reportPath string
	speedUnits string
	trim       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.tuningPath, "tuning", "", "Optional JSON tuning file for pipeline thresholds")
	flag.StringVar(&opts.reportPath, "report", "", "Write an HTML report to this path")
	flag.StringVar(&opts.speedUnits, "units", units.KMPH, "Speed units for the printout ("+units.GetValidUnitsString()+")")
	flag.BoolVar(&opts.trim, "trim", false, "Remove no-movement periods")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <geojson file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := inspect(os.Stdout, flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// inspect runs the pipeline over one geojson file and writes the summary
// printout to w.
func inspect(w io.Writer, path string, opts options) error {
	if !units.IsValid(opts.speedUnits) {
		return fmt.Errorf("invalid units %q, valid values: %s", opts.speedUnits, units.GetValidUnitsString())
	}

	var tuning *config.Tuning
	if opts.tuningPath != "" {
		var err error
		if tuning, err = config.Load(opts.tuningPath); err != nil {
			return err
		}
	}
	cfg := tuning.PipelineConfig()

	src, err := geojson.Load(path)
	if err != nil {
		return err
	}
	tr, err := track.Build(src.VideoID, src.Samples, cfg)
	if err != nil {
		return err
	}
	if opts.trim {
		if err := tr.TrimNoMovement(tuning.TrimConfig()); err != nil {
			return err
		}
	}

	var meanMS, maxMS float64
	for _, v := range tr.SpeedsMS() {
		meanMS += v
		if v > maxMS {
			maxMS = v
		}
	}
	if tr.Frames() > 0 {
		meanMS /= float64(tr.Frames())
	}

	fmt.Fprintf(w, "Video id: %04d\n", tr.VideoID())
	fmt.Fprintf(w, "Number of frames: %d\n", tr.Frames())
	fmt.Fprintf(w, "Absent frames num: %d\n", tr.RemovedAbsent())
	fmt.Fprintf(w, "Outlier frames num: %d\n", tr.RemovedOutliers())
	fmt.Fprintf(w, "No movement frames num: %d\n", tr.RemovedNoMovement())
	fmt.Fprintf(w, "Distance traveled: %.0f m\n", tr.TotalDistance())
	fmt.Fprintf(w, "Average speed: %.2f %s\n", units.ConvertSpeed(meanMS, opts.speedUnits), opts.speedUnits)
	fmt.Fprintf(w, "Max speed: %.2f %s\n", units.ConvertSpeed(maxMS, opts.speedUnits), opts.speedUnits)

	if opts.reportPath != "" {
		if err := report.WriteFile(opts.reportPath, tr, cfg); err != nil {
			return err
		}
		fmt.Fprintf(w, "Report written to %s\n", opts.reportPath)
	}
	return nil
}
