// Package pdfplan turns a construction-drawing PDF into classifier page
// inputs using pdfcpu: text fragments and vector geometry per page.
package pdfplan

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/bouwdoc/viewtype/models"
)

// ExtractFile reads a PDF and produces one PageInput per page. Pages
// whose content stream cannot be read yield an input with empty texts
// and geometry rather than failing the whole document.
func ExtractFile(path string) ([]models.PageInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	pages := make([]models.PageInput, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		content := extractPage(ctx, pageNr)

		fragments := make([]models.TextFragment, len(content.texts))
		for i, t := range content.texts {
			fragments[i] = models.Fragment(t)
		}

		pages = append(pages, models.PageInput{
			PageNumber: pageNr,
			Texts:      fragments,
			Drawings:   content.drawings,
		})
	}

	return pages, nil
}

// extractPage parses a single page's content stream.
func extractPage(ctx *model.Context, pageNr int) pageContent {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return pageContent{}
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return pageContent{}
	}
	return parseContent(data)
}
