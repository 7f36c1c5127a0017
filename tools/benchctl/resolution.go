package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

var resolutionCmd = &cobra.Command{
	Use:   "resolution",
	Short: "Print the measured and kernel-reported clock resolution",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("measured: %s\n", measurement.Resolution())

		if kernel, err := measurement.KernelClockResolution(); err == nil {
			fmt.Printf("kernel:   %s\n", kernel)
		} else {
			fmt.Printf("kernel:   unavailable (%v)\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolutionCmd)
}
