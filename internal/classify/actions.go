package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/bouwdoc/viewtype/internal/common"
	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/storage"
)

// ClassifyAction reads a batch of pages from JSON, classifies them with
// a worker pool, and writes one result record per page.
func ClassifyAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	engine, err := common.BuildEngine(c.String("catalog"), c.Bool("language"))
	if err != nil {
		logger.Error("failed to build engine", "error", err)
		os.Exit(2)
	}

	s := &storage.Storage{}
	data, err := s.ReadInput(c.String("input"))
	if err != nil {
		logger.Error("failed to read input", "error", err, "input", c.String("input"))
		os.Exit(2)
	}

	pages, err := common.DecodePages(data)
	if err != nil {
		logger.Error("invalid input document", "error", err)
		os.Exit(1)
	}

	logger.Info("classifying pages", "pages", len(pages), "workers", c.Int("workers"))
	entries := RunPool(engine, logger, pages, c.Int("workers"))

	output, err := json.MarshalIndent(models.DetectResponse{Pages: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	output = append(output, '\n')
	if err := s.WriteOutput(c.String("output"), output); err != nil {
		logger.Error("failed to write results", "error", err)
		os.Exit(2)
	}

	summary := BuildSummary(entries)
	if !c.Bool("quiet") {
		PrintSummary(os.Stderr, summary)
	}
	logger.Info("classification complete",
		"pages", summary.Pages,
		"failed", summary.Failed,
		"elapsed", time.Since(startTime).String())

	return nil
}
