// Package kml serializes projected antenna pads as KML ground markers.
package kml

import (
	"fmt"
	"io"
	"os"

	kml "github.com/twpayne/go-kml/v3"

	"ringsky/core/pads"
	"ringsky/internal/errors"
)

// Write renders one placemark per pad, projected through proj, into w.
func Write(w io.Writer, docName string, proj *pads.AEQD, padList []pads.Pad) error {
	children := make([]kml.Element, 0, len(padList)+1)
	children = append(children, kml.Name(docName))

	for _, p := range padList {
		lon, lat := proj.Inverse(p.X, p.Y)
		children = append(children, kml.Placemark(
			kml.Name(p.Name),
			kml.Description(fmt.Sprintf("x=%.3f m\ny=%.3f m", p.X, p.Y)),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: lon, Lat: lat}),
			),
		))
	}

	doc := kml.KML(kml.Document(children...))
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return errors.IO("writing KML", err)
	}
	return nil
}

// WriteFile renders the pads to a KML file on disk.
func WriteFile(path, docName string, proj *pads.AEQD, padList []pads.Pad) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.IO("creating KML file", err)
	}
	defer f.Close()
	return Write(f, docName, proj, padList)
}
