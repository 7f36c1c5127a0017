package plotter

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

// RenderHTML renders an interactive line chart into a standalone HTML file.
// All series of one run share the x axis because they were measured against
// the same input set.
func RenderHTML(path string, ms *measurement.Measurements, cfg Config) error {
	scaled := *ms
	if cfg.Scale == LogLog {
		scaled = ms.LogLogScale()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    cfg.Title,
			Subtitle: fmt.Sprintf("relative error %g, clock resolution %s", ms.RelativeError, ms.Resolution),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: cfg.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.YLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for i, series := range scaled.Series {
		sorted := measurement.Measurement{AlgorithmName: series.AlgorithmName, Points: append([]measurement.Point(nil), series.Points...)}
		sorted.SortBySize()

		if i == 0 {
			sizes := make([]int, len(sorted.Points))
			for j, point := range sorted.Points {
				sizes[j] = point.Size
			}
			line.SetXAxis(sizes)
		}

		data := make([]opts.LineData, len(sorted.Points))
		for j, point := range sorted.Points {
			data[j] = opts.LineData{Value: point.Time.Microseconds()}
		}

		line.AddSeries(sorted.AlgorithmName, data)
	}

	page := components.NewPage()
	page.AddCharts(line)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return page.Render(file)
}
