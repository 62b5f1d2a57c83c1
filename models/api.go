package models

// DetectRequest is the body of a detect-view-type call: a batch of pages.
type DetectRequest struct {
	Pages []PageInput `json:"pages"`
}

// PageEntry is one element of a detect response. Exactly one of the
// embedded result or Error is meaningful: a page that failed validation
// carries Error and no result fields, and never aborts sibling pages.
type PageEntry struct {
	PageNumber int    `json:"page_number"`
	Error      string `json:"error,omitempty"`

	ViewType         string       `json:"view_type,omitempty"`
	Confidence       float64      `json:"confidence"`
	Reason           string       `json:"reason,omitempty"`
	Scale            *ScaleResult `json:"scale,omitempty"`
	DetectedKeywords []string     `json:"detected_keywords,omitempty"`
	Language         string       `json:"language,omitempty"`
}

// EntryFromResult converts a PageResult into a response entry.
func EntryFromResult(r PageResult) PageEntry {
	scale := r.Scale
	return PageEntry{
		PageNumber:       r.PageNumber,
		ViewType:         r.ViewType,
		Confidence:       r.Confidence,
		Reason:           r.Reason,
		Scale:            &scale,
		DetectedKeywords: r.DetectedKeywords,
		Language:         r.Language,
	}
}

// DetectResponse mirrors DetectRequest: one entry per input page.
type DetectResponse struct {
	Pages []PageEntry `json:"pages"`
}
