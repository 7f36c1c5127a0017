package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ADS-laboratory/chrono-probe/pkg/export"
)

var regressLogLog bool

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Print the least-squares fit of each series of an exported run",
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := export.ReadJSON(regressIn)
		if err != nil {
			return err
		}

		for _, series := range run.Measurements.Series {
			fitted := series
			if regressLogLog {
				fitted = series.LogLogScale()
			}

			slope, intercept := fitted.LinearRegression()
			fmt.Printf("%s: %.6f * x + %.6f\n", series.AlgorithmName, slope, intercept)
		}

		return nil
	},
}

var regressIn string

func init() {
	regressCmd.Flags().StringVar(&regressIn, "in", "", "Path to an exported run JSON file")
	regressCmd.Flags().BoolVar(&regressLogLog, "loglog", false, "Fit on a log-log scale (slope estimates the power-law exponent)")
	_ = regressCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(regressCmd)
}
