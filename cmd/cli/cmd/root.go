// Package cmd provides the CLI commands for ringsky.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ringsky/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ringsky",
	Short: "Generate parametric ring sky models for interferometry simulations",
	Long: `ringsky synthesizes a sky-brightness model made of a central compact
disk surrounded by concentric flux-normalized annuli, and stamps it onto
a pixel image suitable for injection into a radio-interferometry
simulation pipeline.

Examples:
  ringsky generate
  ringsky generate run.json
  ringsky generate --n_rings 5 --ring_flux 5e-3
  ringsky kml --cfg alma.cycle11.10.cfg --kml pads.kml`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(kmlCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = logging.Initialize(cfg)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ringsky version 0.1.0")
	},
}
