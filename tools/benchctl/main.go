// benchctl inspects and renders measurement runs exported by the probe
// binary.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "benchctl",
	Short: "Inspect and render exported measurement runs",
}

func main() {
	log.SetOutput(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
