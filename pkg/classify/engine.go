// Package classify implements the view-type detection engine for
// construction-drawing pages: per-category scoring of pooled page text
// plus layout heuristics, best-category selection, and scale extraction.
package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/catalog"
	"github.com/bouwdoc/viewtype/pkg/lang"
	"github.com/bouwdoc/viewtype/pkg/scale"
)

// NoMatchReason is reported when no category scored above zero.
const NoMatchReason = "No matching patterns detected"

// Engine classifies drawing pages against a compiled catalog. It holds
// no mutable state: one engine is safe for concurrent use across pages.
type Engine struct {
	catalog *catalog.Catalog

	// Language, when set, annotates each result with the detected
	// language of the page text. It never influences scoring.
	Language *lang.Detector
}

// NewEngine creates an engine over a compiled catalog.
func NewEngine(cat *catalog.Catalog) (*Engine, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	if !cat.Compiled() {
		return nil, fmt.Errorf("catalog must be compiled before use")
	}
	return &Engine{catalog: cat}, nil
}

// ClassifyPage classifies a single page. It fails only on invalid input
// (a fragment without a text field); geometry is optional throughout.
func (e *Engine) ClassifyPage(page models.PageInput) (models.PageResult, error) {
	texts, err := fragmentTexts(page.Texts)
	if err != nil {
		return models.PageResult{}, fmt.Errorf("page %d: %w", page.PageNumber, err)
	}

	buffer := normalize(texts)

	// Running best over uncapped scores; a later category never displaces
	// an earlier one on a tie.
	maxConfidence := 0.0
	bestViewType := "unknown"
	bestReason := NoMatchReason
	var bestKeywords []string

	for ci := range e.catalog.Categories {
		cat := &e.catalog.Categories[ci]
		score := scoreCategory(cat, buffer, page.Drawings)
		if score.confidence > maxConfidence {
			maxConfidence = score.confidence
			bestViewType = cat.Name
			bestReason = "Pattern matches: " + strings.Join(score.keywords, ", ")
			bestKeywords = score.keywords
		}
	}

	// Cap and round only the winning value.
	confidence := math.Round(math.Min(maxConfidence, 1.0)*100) / 100

	result := models.PageResult{
		PageNumber:       page.PageNumber,
		ViewType:         bestViewType,
		Confidence:       confidence,
		Reason:           bestReason,
		Scale:            scale.Extract(texts),
		DetectedKeywords: bestKeywords,
	}
	if e.Language != nil {
		result.Language = e.Language.Detect(strings.Join(texts, " "))
	}
	return result, nil
}

// ClassifyBatch classifies every page independently. A page that fails
// validation is reported as a failed entry; its siblings still classify.
func (e *Engine) ClassifyBatch(pages []models.PageInput) []models.PageEntry {
	entries := make([]models.PageEntry, len(pages))
	for i, page := range pages {
		result, err := e.ClassifyPage(page)
		if err != nil {
			entries[i] = models.PageEntry{PageNumber: page.PageNumber, Error: err.Error()}
			continue
		}
		entries[i] = models.EntryFromResult(result)
	}
	return entries
}
