package grid

import (
	"strings"
)

// DecTag derives a filesystem-safe token from a declination string for
// artifact naming: "-" becomes "m", "+" becomes "p", and "d" and "."
// are stripped. Existing pipelines key on this exact scheme.
func DecTag(dec string) string {
	return strings.NewReplacer(
		"-", "m",
		"+", "p",
		"d", "",
		".", "",
	).Replace(dec)
}

// ImageName builds the output artifact base name from the configured
// output base and the declination tag.
func ImageName(outputBase, dec string) string {
	return outputBase + "_dec" + DecTag(dec)
}
