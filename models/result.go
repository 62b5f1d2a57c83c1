package models

// Scale detection sources.
const (
	ScaleSourceExplicit  = "explicit_scale"
	ScaleSourceDimension = "dimension_inference"
	ScaleSourceNone      = "not_detected"
)

// ScaleResult describes the drawing scale derived from a page's text.
type ScaleResult struct {
	ScaleRatio        string   `json:"scale_ratio"`
	ScaleValue        *float64 `json:"scale_value,omitempty"`
	Source            string   `json:"source"`
	DetectedDimension *float64 `json:"detected_dimension,omitempty"`
}

// PageResult is the classification record for a single page. Confidence
// is in [0.0, 1.0], rounded to two decimals. ViewType is "unknown" when
// no category scored above zero, in which case DetectedKeywords is empty.
type PageResult struct {
	PageNumber       int         `json:"page_number"`
	ViewType         string      `json:"view_type"`
	Confidence       float64     `json:"confidence"`
	Reason           string      `json:"reason"`
	Scale            ScaleResult `json:"scale"`
	DetectedKeywords []string    `json:"detected_keywords"`
	Language         string      `json:"language,omitempty"`
}
