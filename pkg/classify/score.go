package classify

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/catalog"
)

// categoryScore is the ephemeral outcome of evaluating one category
// against one page. Confidence is left uncapped; the orchestrator caps
// only the final winner.
type categoryScore struct {
	confidence float64
	keywords   []string
}

var scaleNotationRe = regexp.MustCompile(`1:(\d+)`)

// scoreCategory evaluates all of a category's rules and its heuristic
// against the normalized text buffer and the page's geometry.
func scoreCategory(cat *catalog.Category, buffer string, drawings models.Drawings) categoryScore {
	var score categoryScore

	for ri := range cat.Rules {
		rule := &cat.Rules[ri]
		if re := rule.Regexp(); re != nil {
			matches := re.FindAllString(buffer, -1)
			if len(matches) > 0 {
				score.keywords = append(score.keywords, matches...)
				score.confidence += rule.EffectiveWeight()
			}
			continue
		}
		// all_of rule: every token must appear literally.
		all := true
		for _, tok := range rule.AllOf {
			if !strings.Contains(buffer, tok) {
				all = false
				break
			}
		}
		if all {
			score.keywords = append(score.keywords, rule.AllOf...)
			score.confidence += rule.EffectiveWeight()
		}
	}

	if h := cat.Heuristic; h != nil {
		if token, ok := evalHeuristic(h, buffer, drawings); ok {
			score.confidence += h.Weight
			score.keywords = append(score.keywords, token)
		}
	}

	return score
}

// evalHeuristic applies a layout heuristic and returns its synthetic
// keyword token when it fires. All count thresholds are exclusive.
func evalHeuristic(h *catalog.Heuristic, buffer string, drawings models.Drawings) (string, bool) {
	switch h.Kind {
	case catalog.HeuristicRoomLayout:
		large := 0
		for _, r := range drawings.Rectangles {
			if r.Area > h.MinArea {
				large++
			}
		}
		if large > h.MinCount {
			return "room_layout", true
		}

	case catalog.HeuristicVerticalLines:
		vertical := 0
		for _, l := range drawings.Lines {
			if math.Abs(l.P2.X-l.P1.X) < h.MaxDelta {
				vertical++
			}
		}
		if vertical > h.MinLines {
			return "vertical_lines", true
		}

	case catalog.HeuristicLargeScale:
		minScale, found := 0, false
		for _, m := range scaleNotationRe.FindAllStringSubmatch(buffer, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n <= h.MaxScale && (!found || n < minScale) {
				minScale = n
				found = true
			}
		}
		if found {
			return fmt.Sprintf("large_scale_1:%d", minScale), true
		}

	case catalog.HeuristicElectricalSymbols:
		for _, tok := range h.Tokens {
			if strings.Contains(buffer, tok) {
				return "electrical_symbols", true
			}
		}
	}

	return "", false
}
