package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/catalog"
	"github.com/bouwdoc/viewtype/pkg/classify"
	"github.com/bouwdoc/viewtype/pkg/lang"
)

// NewLogger builds the JSON logger the command actions share. Quiet
// mode raises the level so only errors reach stderr.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// BuildEngine assembles a classification engine: the built-in catalog
// or a user-supplied YAML catalog, plus optional language annotation.
func BuildEngine(catalogPath string, withLanguage bool) (*classify.Engine, error) {
	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}

	engine, err := classify.NewEngine(cat)
	if err != nil {
		return nil, err
	}
	if withLanguage {
		engine.Language = lang.NewDetector()
	}
	return engine, nil
}

// DecodePages accepts either the service request shape {"pages": [...]}
// or a bare JSON array of pages.
func DecodePages(data []byte) ([]models.PageInput, error) {
	var req models.DetectRequest
	if err := json.Unmarshal(data, &req); err == nil && req.Pages != nil {
		return req.Pages, nil
	}

	var pages []models.PageInput
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("input is neither a pages object nor a page array: %w", err)
	}
	return pages, nil
}
