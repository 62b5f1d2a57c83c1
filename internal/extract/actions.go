// Package extract implements the PDF ingestion command: drawing PDF in,
// classifier page inputs (or classification results) out.
package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bouwdoc/viewtype/internal/common"
	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/pdfplan"
	"github.com/bouwdoc/viewtype/pkg/storage"
)

// ExtractAction extracts text fragments and geometry from a drawing PDF.
// With --classify the pages are run through the engine directly.
func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	path := c.String("input")
	if path == "" {
		path = c.Args().First()
	}
	if path == "" {
		return fmt.Errorf("no PDF provided: pass a path or use --input")
	}

	pages, err := pdfplan.ExtractFile(path)
	if err != nil {
		logger.Error("pdf extraction failed", "error", err, "path", path)
		os.Exit(2)
	}
	logger.Info("extracted pdf", "path", path, "pages", len(pages))

	var document interface{} = models.DetectRequest{Pages: pages}
	if c.Bool("classify") {
		engine, err := common.BuildEngine(c.String("catalog"), c.Bool("language"))
		if err != nil {
			logger.Error("failed to build engine", "error", err)
			os.Exit(2)
		}
		document = models.DetectResponse{Pages: engine.ClassifyBatch(pages)}
	}

	output, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	output = append(output, '\n')

	s := &storage.Storage{}
	if err := s.WriteOutput(c.String("output"), output); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(2)
	}
	return nil
}
