package models

// Point is a coordinate in the drawing's coordinate system.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a single line segment extracted from a drawing.
type Line struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Rectangle is a rectangle extracted from a drawing. Only the area is
// needed for classification; units follow the caller's coordinate system.
type Rectangle struct {
	Area float64 `json:"area"`
}

// Drawings holds the geometric primitives of a single page. Both
// collections are optional; a missing collection means no primitives.
type Drawings struct {
	Lines      []Line      `json:"lines,omitempty"`
	Rectangles []Rectangle `json:"rectangles,omitempty"`
}
