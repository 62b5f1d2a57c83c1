// Package scale derives a drawing scale from page text, either from an
// explicit scale notation or inferred from a detected dimension.
package scale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bouwdoc/viewtype/models"
)

// TypicalRoomSize is the assumed real-world room dimension, in metres,
// used when inferring scale from a dimension annotation.
const TypicalRoomSize = 3.6

// Explicit scale notations, tried in order. The bare 1:N form comes
// first, so "schaal 1:100" resolves through it with the same result.
var explicitPatterns = []struct {
	re        *regexp.Regexp
	twoGroups bool
}{
	{re: regexp.MustCompile(`1:(\d+)`)},
	{re: regexp.MustCompile(`(?i)schaal\s*(\d+):(\d+)`), twoGroups: true},
	{re: regexp.MustCompile(`(?i)scale\s*(\d+):(\d+)`), twoGroups: true},
}

// Dimension annotations, tried in order. Divisor converts the detected
// value to metres. The metre pattern allows comma or period decimals.
var dimensionPatterns = []struct {
	re      *regexp.Regexp
	divisor float64
}{
	{re: regexp.MustCompile(`(\d+)\s*mm`), divisor: 1000},
	{re: regexp.MustCompile(`(\d+)\s*cm`), divisor: 100},
	{re: regexp.MustCompile(`(\d+[,.]?\d*)\s*m`), divisor: 1},
}

// Extract scans the raw text fragments of a page for scale information.
// Unlike classification, the fragments are not lower-cased: the unit
// suffixes of the dimension patterns are case-sensitive.
func Extract(texts []string) models.ScaleResult {
	allText := strings.Join(texts, " ")

	for _, p := range explicitPatterns {
		m := p.re.FindStringSubmatch(allText)
		if m == nil {
			continue
		}
		if p.twoGroups {
			num, err1 := strconv.Atoi(m[1])
			den, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil || den == 0 {
				continue
			}
			value := float64(num) / float64(den)
			return models.ScaleResult{
				ScaleRatio: fmt.Sprintf("%d:%d", num, den),
				ScaleValue: &value,
				Source:     models.ScaleSourceExplicit,
			}
		}
		den, err := strconv.Atoi(m[1])
		if err != nil || den == 0 {
			continue
		}
		value := 1 / float64(den)
		return models.ScaleResult{
			ScaleRatio: fmt.Sprintf("1:%d", den),
			ScaleValue: &value,
			Source:     models.ScaleSourceExplicit,
		}
	}

	for _, p := range dimensionPatterns {
		m := p.re.FindStringSubmatch(allText)
		if m == nil {
			continue
		}
		detected, err := parseDecimal(m[1])
		if err != nil {
			continue
		}
		metres := detected / p.divisor
		if metres <= 0 {
			// A zero dimension cannot anchor a scale; try the next unit.
			continue
		}
		value := metres / TypicalRoomSize
		return models.ScaleResult{
			ScaleRatio:        fmt.Sprintf("1:%d", int(1/value)),
			ScaleValue:        &value,
			Source:            models.ScaleSourceDimension,
			DetectedDimension: &metres,
		}
	}

	return models.ScaleResult{
		ScaleRatio: "unknown",
		Source:     models.ScaleSourceNone,
	}
}

// parseDecimal parses a number that may use a comma or period as its
// decimal separator, as both appear on Dutch and English drawings.
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	return v, nil
}
