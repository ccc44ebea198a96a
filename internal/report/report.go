// Package report renders a processed track as a standalone HTML page: a
// speed-over-time line chart and the flattened trajectory colored by speed.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// viridis, same palette everywhere a chart colors by speed.
var speedColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// SpeedChart builds the speed-vs-time line chart for a track.
func SpeedChart(tr *track.Track) *charts.Line {
	times := tr.Times()
	speeds := tr.SpeedsKMH()

	data := make([]opts.LineData, len(speeds))
	for i, v := range speeds {
		data[i] = opts.LineData{Value: v}
	}
	labels := make([]string, len(times))
	for i, ts := range times {
		labels[i] = fmt.Sprintf("%.1f", ts)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Video %04d", tr.VideoID()),
			Subtitle: fmt.Sprintf("frames=%d distance=%.0fm", tr.Frames(), tr.TotalDistance()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "speed (km/h)"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("speed", data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// TrajectoryChart builds the flattened-trajectory scatter, colored by the
// per-frame speed through a visual map.
func TrajectoryChart(tr *track.Track, cfg track.Config) *charts.Scatter {
	xs, ys := tr.PlanarCoords(cfg)
	speeds := tr.SpeedsKMH()

	data := make([]opts.ScatterData, len(xs))
	maxSpeed := 0.0
	for i := range xs {
		speed := 0.0
		if i < len(speeds) {
			speed = speeds[i]
		}
		if speed > maxSpeed {
			maxSpeed = speed
		}
		data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i], speed}}
	}
	if maxSpeed == 0 {
		maxSpeed = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Trajectory"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxSpeed),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: speedColors},
		}),
	)
	scatter.AddSeries("trajectory", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter
}

// Render writes the full report page for a track to w.
func Render(w io.Writer, tr *track.Track, cfg track.Config) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Video %04d", tr.VideoID())
	page.AddCharts(SpeedChart(tr), TrajectoryChart(tr, cfg))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render report for video %04d: %w", tr.VideoID(), err)
	}
	return nil
}

// WriteFile renders the report page to an HTML file at path.
func WriteFile(path string, tr *track.Track, cfg track.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Render(f, tr, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
