// Package lang detects whether a page's text is Dutch or English, the
// two languages the pattern catalog covers. The result is informational
// only and never feeds back into scoring.
package lang

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua detector restricted to the catalog languages.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a Dutch/English detector. Building loads language
// models, so construct once and share; Detect is safe for concurrent use.
func NewDetector() *Detector {
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Dutch, lingua.English).
		Build()
	return &Detector{detector: d}
}

// Detect returns the ISO 639-1 code of the most likely language
// ("nl" or "en"), or "unknown" when the text carries no usable signal.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "unknown"
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "unknown"
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
