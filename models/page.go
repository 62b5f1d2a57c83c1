// Package models defines the wire and in-memory shapes for page
// classification: page inputs, drawing geometry, and result records.
package models

// TextFragment is one piece of text extracted from a drawing page.
// Text is a pointer so that a fragment whose "text" field is absent can
// be told apart from an empty string and rejected as invalid input.
type TextFragment struct {
	Text *string `json:"text"`
}

// Fragment wraps a plain string as a TextFragment.
func Fragment(s string) TextFragment {
	return TextFragment{Text: &s}
}

// PageInput describes a single drawing page to classify. The page number
// is caller-assigned and not validated for uniqueness or order.
type PageInput struct {
	PageNumber int            `json:"page_number"`
	Texts      []TextFragment `json:"texts"`
	Drawings   Drawings       `json:"drawings"`
}
