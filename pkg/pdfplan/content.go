package pdfplan

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/bouwdoc/viewtype/models"
)

// pageContent is what one page's content stream yields: text fragments
// and the geometric primitives the classifier's heuristics look at.
type pageContent struct {
	texts    []string
	drawings models.Drawings
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// parseContent scans PDF content stream operators. Text show operators
// (Tj, TJ, ') become fragments; re operators become rectangles; m/l
// path operators become line segments.
func parseContent(data []byte) pageContent {
	var pc pageContent
	var geom geomState

	lines := bytes.Split(data, []byte{'\n'})
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")) ||
			(bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("("))) {
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); strings.TrimSpace(text) != "" {
					pc.texts = append(pc.texts, text)
				}
			}
			continue
		}

		geom.scan(string(line), &pc.drawings)
	}

	return pc
}

// geomState carries the path state of the content stream walk. The
// current point persists across stream lines, as path operators are
// commonly split one per line.
type geomState struct {
	stack       []float64
	current     models.Point
	haveCurrent bool
}

// scan walks one stream line's tokens, collecting numeric operands and
// applying the path operators that matter for layout analysis:
// re (rectangle), m (moveto), l (lineto).
func (g *geomState) scan(line string, d *models.Drawings) {
	for _, tok := range strings.Fields(line) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			g.stack = append(g.stack, v)
			continue
		}

		switch tok {
		case "re":
			if len(g.stack) >= 4 {
				w, h := g.stack[len(g.stack)-2], g.stack[len(g.stack)-1]
				area := w * h
				if area < 0 {
					area = -area
				}
				d.Rectangles = append(d.Rectangles, models.Rectangle{Area: area})
			}
		case "m":
			if len(g.stack) >= 2 {
				g.current = models.Point{X: g.stack[len(g.stack)-2], Y: g.stack[len(g.stack)-1]}
				g.haveCurrent = true
			}
		case "l":
			if len(g.stack) >= 2 && g.haveCurrent {
				next := models.Point{X: g.stack[len(g.stack)-2], Y: g.stack[len(g.stack)-1]}
				d.Lines = append(d.Lines, models.Line{P1: g.current, P2: next})
				g.current = next
			}
		}
		// Any operator consumes the pending operands.
		g.stack = g.stack[:0]
	}
}

// decodePDFString handles the basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(raw[i])
			}
			continue
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}
