// Package cmd - kml command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ringsky/core/pads"
	"ringsky/internal/kml"
	"ringsky/internal/logging"
)

var kmlFlags struct {
	cfgPath string
	kmlPath string
	lat0    float64
	lon0    float64
	docName string
}

// kmlCmd represents the kml command
var kmlCmd = &cobra.Command{
	Use:   "kml",
	Short: "Convert an array .cfg pad file to Google Earth KML markers",
	Long: `Read antenna pad positions (local east/north meters) from an array
configuration file, project them to WGS84 through an azimuthal
equidistant projection centered on the array, and write one KML ground
marker per pad.`,
	RunE: runKML,
}

func init() {
	kmlCmd.Flags().StringVar(&kmlFlags.cfgPath, "cfg", "", "path to input .cfg")
	kmlCmd.Flags().StringVar(&kmlFlags.kmlPath, "kml", "", "output .kml path")
	kmlCmd.Flags().Float64Var(&kmlFlags.lat0, "lat0", -23.02271113, "projection origin latitude")
	kmlCmd.Flags().Float64Var(&kmlFlags.lon0, "lon0", -67.75436287, "projection origin longitude")
	kmlCmd.Flags().StringVar(&kmlFlags.docName, "name", "ALMA Pads", "KML document name")
	_ = kmlCmd.MarkFlagRequired("cfg")
	_ = kmlCmd.MarkFlagRequired("kml")
}

func runKML(cmd *cobra.Command, args []string) error {
	padList, err := pads.LoadCfg(kmlFlags.cfgPath)
	if err != nil {
		return err
	}

	proj := pads.NewAEQD(kmlFlags.lat0, kmlFlags.lon0)
	if err := kml.WriteFile(kmlFlags.kmlPath, kmlFlags.docName, proj, padList); err != nil {
		return err
	}

	logging.Info("saved KML",
		zap.String("kml", kmlFlags.kmlPath),
		zap.Int("pads", len(padList)))
	return nil
}
