package kml

import (
	"bytes"
	"strings"
	"testing"

	"ringsky/core/pads"
)

func TestWrite(t *testing.T) {
	proj := pads.NewAEQD(-23.02271113, -67.75436287)
	padList := []pads.Pad{
		{Name: "A001", X: -33.8941, Y: -712.7518},
		{Name: "A002", X: 148.7104, Y: 235.7033},
	}

	var buf bytes.Buffer
	if err := Write(&buf, "ALMA Pads", proj, padList); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<name>ALMA Pads</name>",
		"<name>A001</name>",
		"<name>A002</name>",
		"<Placemark>",
		"<Point>",
		"x=-33.894 m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if got := strings.Count(out, "<Placemark>"); got != 2 {
		t.Errorf("found %d placemarks, want 2", got)
	}

	// Markers must land near the projection origin.
	if !strings.Contains(out, "-67.7") {
		t.Error("no coordinate near origin longitude -67.75 in output")
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "empty", pads.NewAEQD(0, 0), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "<Placemark>") {
		t.Error("empty pad list produced placemarks")
	}
}
