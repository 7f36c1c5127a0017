package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ADS-laboratory/chrono-probe/pkg/export"
	"github.com/ADS-laboratory/chrono-probe/pkg/plotter"
)

var (
	plotIn    string
	plotOut   string
	plotScale string
	plotTitle string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render an exported run as a chart (.png, .svg or .html)",
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := export.ReadJSON(plotIn)
		if err != nil {
			return err
		}

		cfg := plotter.DefaultConfig()
		if plotTitle != "" {
			cfg = cfg.WithTitle(plotTitle)
		} else {
			cfg = cfg.WithTitle(run.Workload)
		}
		if plotScale == "loglog" {
			cfg = cfg.WithScale(plotter.LogLog).WithLabels("log2(size)", "log2(time [us])")
		}

		switch strings.ToLower(filepath.Ext(plotOut)) {
		case ".html":
			return plotter.RenderHTML(plotOut, run.Measurements, cfg)
		case ".png", ".svg", ".pdf":
			return plotter.TimePlot(plotOut, run.Measurements, cfg)
		default:
			return fmt.Errorf("unsupported output format %q", filepath.Ext(plotOut))
		}
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotIn, "in", "", "Path to an exported run JSON file")
	plotCmd.Flags().StringVar(&plotOut, "out", "plot.png", "Output path; format follows the extension")
	plotCmd.Flags().StringVar(&plotScale, "scale", "linear", "Axis scale - choose from [linear, loglog]")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "Chart title (defaults to the run's workload)")
	_ = plotCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(plotCmd)
}
