package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bouwdoc/viewtype/models"
)

// ErrInvalidInput marks a page that violates the caller contract, e.g.
// a text fragment without a text field. The page is rejected outright
// rather than patched with a default, so upstream extraction bugs stay
// visible.
var ErrInvalidInput = errors.New("invalid input")

// fragmentTexts validates a page's fragments and returns their strings.
func fragmentTexts(fragments []models.TextFragment) ([]string, error) {
	texts := make([]string, len(fragments))
	for i, f := range fragments {
		if f.Text == nil {
			return nil, fmt.Errorf("text fragment %d has no text field: %w", i, ErrInvalidInput)
		}
		texts[i] = *f.Text
	}
	return texts, nil
}

// normalize pools all fragments into one lower-cased search buffer.
// Fragments are joined with single spaces; no further normalization is
// applied — the catalog's patterns are responsible for variants.
func normalize(texts []string) string {
	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}
	return strings.Join(lowered, " ")
}
