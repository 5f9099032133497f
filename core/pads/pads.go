// Package pads parses interferometer array configuration (.cfg) files
// and projects local pad offsets to geographic coordinates.
package pads

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ringsky/internal/errors"
)

// Pad is one antenna pad: a name and its local east/north offset in
// meters from the array reference position.
type Pad struct {
	Name string
	X    float64
	Y    float64
}

// ParseCfg reads pad rows from an array configuration file. Two row
// layouts exist in the wild: "x y z diameter name" and "name x y z".
// Blank lines, comments, and rows with any other field count are skipped.
func ParseCfg(r io.Reader) ([]Pad, error) {
	var pads []Pad
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Fields(text)

		var name, xs, ys string
		switch len(parts) {
		case 5:
			xs, ys, name = parts[0], parts[1], parts[4]
		case 4:
			name, xs, ys = parts[0], parts[1], parts[2]
		default:
			continue
		}

		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("bad pad x on line %d", line), err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("bad pad y on line %d", line), err)
		}
		pads = append(pads, Pad{Name: name, X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.IO("reading cfg", err)
	}
	return pads, nil
}

// LoadCfg parses pads from a file on disk.
func LoadCfg(path string) ([]Pad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO("opening cfg", err)
	}
	defer f.Close()
	return ParseCfg(f)
}
