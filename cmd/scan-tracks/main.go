// scan-tracks processes every geojson file under a directory through the
// trajectory pipeline, records the summaries in the catalog database, and
// prints the videos worth a closer look.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/catalog"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/config"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/geojson"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/monitoring"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

func main() {
	geojsonDir := flag.String("geojson", "geojson", "Directory containing .geojson track files")
	dbPath := flag.String("db", "catalog.db", "Path to the catalog database")
	migrationsDir := flag.String("migrations", "migrations", "Path to the schema migrations directory")
	tuningPath := flag.String("tuning", "", "Optional JSON tuning file for pipeline thresholds")
	trim := flag.Bool("trim", false, "Remove no-movement periods before summarizing")
	flag.Parse()

	var tuning *config.Tuning
	if *tuningPath != "" {
		var err error
		if tuning, err = config.Load(*tuningPath); err != nil {
			fmt.Fprintf(os.Stderr, "tuning error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg := tuning.PipelineConfig()
	trimCfg := tuning.TrimConfig()

	db, err := catalog.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.MigrateUp(*migrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "migration error: %v\n", err)
		os.Exit(1)
	}

	processed := 0
	err = filepath.WalkDir(*geojsonDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".geojson" {
			return nil
		}

		src, err := geojson.Load(path)
		if err != nil {
			monitoring.Logf("skipping %s: %v", path, err)
			return nil
		}
		tr, err := track.Build(src.VideoID, src.Samples, cfg)
		if err != nil {
			monitoring.Logf("skipping %s: %v", path, err)
			return nil
		}
		if *trim {
			if err := tr.TrimNoMovement(trimCfg); err != nil {
				monitoring.Logf("skipping %s: %v", path, err)
				return nil
			}
		}

		summary := catalog.Summarize(tr)
		if err := db.RecordSummary(&summary); err != nil {
			return err
		}
		processed++
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("processed %d tracks\n", processed)

	interesting, err := db.InterestingSummaries(catalog.DefaultInterestRule())
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog error: %v\n", err)
		os.Exit(1)
	}
	for _, s := range interesting {
		fmt.Println()
		fmt.Printf("Video id: %04d\n", s.VideoID)
		fmt.Printf("Number of frames: %d\n", s.Frames)
		fmt.Printf("Distance: %.0f m\n", s.DistanceM)
		fmt.Printf("Average speed: %.1f km/h\n", s.MeanSpeedKMH)
		fmt.Printf("Max speed: %.1f km/h\n", s.MaxSpeedKMH)
		fmt.Printf("Outlier frames num: %d\n", s.RemovedOutliers)
	}
}
