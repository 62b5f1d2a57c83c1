package pdfplan

import (
	"testing"
)

func TestParseContentTextOperators(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
(Slaapkamer 1) Tj
[(Doorsnede) -250 (A-A)] TJ
(schaal 1:100) '
ET`)

	pc := parseContent(stream)

	want := []string{"Slaapkamer 1", "Doorsnede", "A-A", "schaal 1:100"}
	if len(pc.texts) != len(want) {
		t.Fatalf("parseContent() texts = %v, want %v", pc.texts, want)
	}
	for i, w := range want {
		if pc.texts[i] != w {
			t.Errorf("fragment %d = %q, want %q", i, pc.texts[i], w)
		}
	}
}

func TestParseContentGeometry(t *testing.T) {
	stream := []byte(`10 20 100 200 re f
50 60 m
50 400 l
120 400 l
S`)

	pc := parseContent(stream)

	if len(pc.drawings.Rectangles) != 1 {
		t.Fatalf("rectangles = %v, want 1", pc.drawings.Rectangles)
	}
	if got := pc.drawings.Rectangles[0].Area; got != 20000 {
		t.Errorf("rectangle area = %v, want 20000", got)
	}

	if len(pc.drawings.Lines) != 2 {
		t.Fatalf("lines = %v, want 2", pc.drawings.Lines)
	}
	first := pc.drawings.Lines[0]
	if first.P1.X != 50 || first.P1.Y != 60 || first.P2.X != 50 || first.P2.Y != 400 {
		t.Errorf("first line = %+v, want (50,60)-(50,400)", first)
	}
	// The lineto chain continues from the previous endpoint.
	second := pc.drawings.Lines[1]
	if second.P1.X != 50 || second.P1.Y != 400 || second.P2.X != 120 || second.P2.Y != 400 {
		t.Errorf("second line = %+v, want (50,400)-(120,400)", second)
	}
}

func TestParseContentNegativeRectangleArea(t *testing.T) {
	pc := parseContent([]byte("0 0 -100 50 re f"))
	if len(pc.drawings.Rectangles) != 1 || pc.drawings.Rectangles[0].Area != 5000 {
		t.Errorf("rectangles = %v, want one with area 5000", pc.drawings.Rectangles)
	}
}

func TestParseContentSkipsBlankText(t *testing.T) {
	pc := parseContent([]byte("(   ) Tj\n( ok ) Tj"))
	if len(pc.texts) != 1 || pc.texts[0] != " ok " {
		t.Errorf("texts = %q, want only %q", pc.texts, " ok ")
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `plain`, want: "plain"},
		{in: `tab\there`, want: "tab\there"},
		{in: `newline\n`, want: "newline\n"},
		{in: `paren\(x\)`, want: "paren(x)"},
		{in: `back\\slash`, want: `back\slash`},
	}

	for _, tt := range tests {
		if got := decodePDFString([]byte(tt.in)); got != tt.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
