package render

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/monitoring"
	"github.com/NikolaJov96/GoPro-Skiing-Analysis/internal/track"
)

// AnimationConfig controls the rendered trajectory animation.
type AnimationConfig struct {
	Resample track.ResampleConfig

	// MaxElevationDeg is the starting camera elevation. The camera tilts
	// from here down to level over the course of the animation.
	MaxElevationDeg float64

	// Size is the side length of the square output frames.
	Size vg.Length
}

func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		Resample: track.ResampleConfig{
			OutputFPS:           30.0,
			SpeedupFactor:       1.0,
			RevolutionDurationS: 1.0,
		},
		MaxElevationDeg: 20.0,
		Size:            10 * vg.Inch,
	}
}

// Animator renders a track as a sequence of PNG frames: the trajectory grows
// point by point while the camera orbits the scene, dropping from the maximum
// elevation to level by the final frame.
type Animator struct {
	tr  *track.Track
	cfg AnimationConfig

	xs, ys, zs []float64
	colors     []color.Color
	halfRange  float64
	zCenter    float64
}

// NewAnimator precomputes the scene for a track: planar coordinates,
// per-point speed colors and the cubic viewing volume.
func NewAnimator(tr *track.Track, trackCfg track.Config, cfg AnimationConfig) (*Animator, error) {
	if tr.Frames() == 0 {
		return nil, track.ErrEmptyTrack
	}

	xs, ys := tr.PlanarCoords(trackCfg)
	zs := tr.Elevations()

	a := &Animator{tr: tr, cfg: cfg, xs: xs, ys: ys, zs: zs}

	minZ, maxZ := zs[0], zs[0]
	maxX, maxY := 0.0, 0.0
	for i := range zs {
		minZ = math.Min(minZ, zs[i])
		maxZ = math.Max(maxZ, zs[i])
		maxX = math.Max(maxX, xs[i])
		maxY = math.Max(maxY, ys[i])
	}
	a.zCenter = (minZ + maxZ) / 2.0
	a.halfRange = math.Max(maxX, math.Max(maxY, maxZ-minZ)) * 1.1 / 2.0
	if a.halfRange == 0 {
		a.halfRange = 1.0
	}

	// Center the horizontal plane; PlanarCoords already starts at zero.
	for i := range xs {
		a.xs[i] -= maxX / 2.0
		a.ys[i] -= maxY / 2.0
	}

	a.colors = speedPalette(tr.SpeedsKMH())
	return a, nil
}

// FrameCount returns how many output frames the animation will have.
func (a *Animator) FrameCount() (int, error) {
	seq, err := a.tr.Resample(a.cfg.Resample)
	if err != nil {
		return 0, err
	}
	return seq.Len(), nil
}

// RenderFrames writes every animation frame into dir as frame_NNNNN.png and
// returns the number of frames written.
func (a *Animator) RenderFrames(dir string) (int, error) {
	seq, err := a.tr.Resample(a.cfg.Resample)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create animation dir: %w", err)
	}

	total := seq.Len()
	for outFrame, bucket := range seq.Buckets {
		elev, azim := a.CameraAngles(outFrame, total)
		file := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", outFrame))
		if err := a.renderFrame(file, bucket.Representative(), elev, azim); err != nil {
			return outFrame, err
		}
	}
	monitoring.Logf("rendered %d animation frames for video %04d into %s", total, a.tr.VideoID(), dir)
	return total, nil
}

// CameraAngles returns the camera elevation and azimuth in degrees for one
// output frame. Elevation falls linearly from MaxElevationDeg to zero; the
// azimuth completes one revolution per RevolutionDurationS of output time.
func (a *Animator) CameraAngles(outFrame, totalFrames int) (elevDeg, azimDeg float64) {
	elevDeg = (1.0 - float64(outFrame)/float64(totalFrames)) * a.cfg.MaxElevationDeg
	timeS := float64(outFrame) / a.cfg.Resample.OutputFPS
	revs := timeS / a.cfg.Resample.RevolutionDurationS
	azimDeg = (revs - math.Trunc(revs)) * 360.0
	return elevDeg, azimDeg
}

// renderFrame projects the first cutoff points through the camera and saves
// one scatter frame.
func (a *Animator) renderFrame(file string, cutoff int, elevDeg, azimDeg float64) error {
	azim := azimDeg * math.Pi / 180.0
	elev := elevDeg * math.Pi / 180.0
	sinA, cosA := math.Sin(azim), math.Cos(azim)
	sinE, cosE := math.Sin(elev), math.Cos(elev)

	pts := make(plotter.XYs, cutoff)
	for i := 0; i < cutoff; i++ {
		x, y, z := a.xs[i], a.ys[i], a.zs[i]-a.zCenter
		depth := x*cosA + y*sinA
		pts[i].X = y*cosA - x*sinA
		pts[i].Y = z*cosE - depth*sinE
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	colors := a.colors
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: 2, Shape: draw.CircleGlyph{}}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Video %04d animation", a.tr.VideoID())
	p.X.Label.Text = "horizontal distance [m]"
	p.Y.Label.Text = "elevation [m]"
	p.X.Min, p.X.Max = -a.halfRange, a.halfRange
	p.Y.Min, p.Y.Max = -a.halfRange, a.halfRange
	p.Add(scatter)

	if err := p.Save(a.cfg.Size, a.cfg.Size, file); err != nil {
		return fmt.Errorf("failed to save frame %s: %w", file, err)
	}
	return nil
}

// speedPalette maps each frame's speed onto a blue-to-red rainbow, scaled by
// the fastest frame in the track.
func speedPalette(speedsKMH []float64) []color.Color {
	ramp := palette.Rainbow(256, palette.Blue, palette.Red, 1, 1, 1).Colors()

	maxSpeed := 0.0
	for _, v := range speedsKMH {
		maxSpeed = math.Max(maxSpeed, v)
	}

	out := make([]color.Color, len(speedsKMH))
	for i, v := range speedsKMH {
		idx := 0
		if maxSpeed > 0 {
			idx = int(v / maxSpeed * float64(len(ramp)-1))
		}
		out[i] = ramp[idx]
	}
	return out
}
