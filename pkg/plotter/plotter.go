// Package plotter renders measurement series as size/time charts. It is a
// collaborator of the measurement engine, never on the timed path.
package plotter

import (
	"fmt"

	"gonum.org/v1/plot"
	gplotter "gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

// Scale selects the axis transform applied before plotting.
type Scale int

const (
	// Linear plots raw sizes against microseconds.
	Linear Scale = iota
	// LogLog plots base-2 logarithms of both axes, which turns power laws
	// into straight lines.
	LogLog
)

func (s Scale) String() string {
	switch s {
	case LogLog:
		return "loglog"
	default:
		return "linear"
	}
}

// Config holds the rendering parameters shared by all output formats.
type Config struct {
	Title  string
	XLabel string
	YLabel string
	Scale  Scale
	Width  vg.Length
	Height vg.Length
}

// DefaultConfig returns the configuration used when the caller has no
// preference.
func DefaultConfig() Config {
	return Config{
		Title:  "Running time",
		XLabel: "Input size",
		YLabel: "Time [us]",
		Scale:  Linear,
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// WithTitle returns a copy with the given title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithScale returns a copy with the given axis scale.
func (c Config) WithScale(scale Scale) Config {
	c.Scale = scale
	return c
}

// WithLabels returns a copy with the given axis labels.
func (c Config) WithLabels(xLabel, yLabel string) Config {
	c.XLabel = xLabel
	c.YLabel = yLabel
	return c
}

// TimePlot renders one line-and-scatter series per algorithm into an image
// file. The output format follows the path extension (.png, .svg, .pdf).
func TimePlot(path string, ms *measurement.Measurements, cfg Config) error {
	scaled := *ms
	if cfg.Scale == LogLog {
		scaled = ms.LogLogScale()
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Legend.Top = true

	var lines []interface{}
	for _, series := range scaled.Series {
		lines = append(lines, series.AlgorithmName, seriesXYs(series))
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return fmt.Errorf("adding series: %w", err)
	}

	return p.Save(cfg.Width, cfg.Height, path)
}

func seriesXYs(series measurement.Measurement) gplotter.XYs {
	sorted := measurement.Measurement{AlgorithmName: series.AlgorithmName, Points: append([]measurement.Point(nil), series.Points...)}
	sorted.SortBySize()

	pts := make(gplotter.XYs, len(sorted.Points))
	for i, point := range sorted.Points {
		pts[i].X = float64(point.Size)
		pts[i].Y = float64(point.Time.Microseconds())
	}

	return pts
}
