// Package catalog holds the view-type knowledge base: per-category text
// patterns and layout heuristics, represented as plain data so rule
// authors can extend it without touching the scoring algorithm.
package catalog

import (
	"fmt"
	"regexp"
)

// Heuristic kinds understood by the scorer.
const (
	HeuristicRoomLayout        = "room_layout"
	HeuristicVerticalLines     = "vertical_lines"
	HeuristicLargeScale        = "large_scale"
	HeuristicElectricalSymbols = "electrical_symbols"
)

// DefaultRuleWeight is the confidence contributed by a matching rule
// that does not set its own weight.
const DefaultRuleWeight = 0.3

// Rule is a single matching rule within a category. Either Pattern (a
// regex evaluated against the lower-cased page text) or AllOf (a set of
// literal tokens that must all be present) is set, not both.
type Rule struct {
	Pattern string   `yaml:"pattern,omitempty"`
	AllOf   []string `yaml:"all_of,omitempty,flow"`
	Weight  float64  `yaml:"weight,omitempty"`

	re *regexp.Regexp
}

// Regexp returns the compiled pattern, or nil for an all_of rule.
// Only valid after the catalog has been compiled.
func (r *Rule) Regexp() *regexp.Regexp {
	return r.re
}

// EffectiveWeight returns the rule's weight, falling back to the default.
func (r *Rule) EffectiveWeight() float64 {
	if r.Weight > 0 {
		return r.Weight
	}
	return DefaultRuleWeight
}

// Heuristic is a layout predicate attached to a category. The threshold
// fields are interpreted per Kind; comparisons are strictly greater/less
// than, matching the reference thresholds.
type Heuristic struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`

	MinArea  float64  `yaml:"min_area,omitempty"`  // room_layout: rectangle area floor
	MinCount int      `yaml:"min_count,omitempty"` // room_layout: qualifying rectangles needed (exclusive)
	MaxDelta float64  `yaml:"max_delta,omitempty"` // vertical_lines: |x2-x1| ceiling (exclusive)
	MinLines int      `yaml:"min_lines,omitempty"` // vertical_lines: qualifying lines needed (exclusive)
	MaxScale int      `yaml:"max_scale,omitempty"` // large_scale: largest N in 1:N that still counts
	Tokens   []string `yaml:"tokens,omitempty,flow"`
}

// Category is one view type with its ordered rules and optional heuristic.
type Category struct {
	Name      string     `yaml:"name"`
	Rules     []Rule     `yaml:"rules"`
	Heuristic *Heuristic `yaml:"heuristic,omitempty"`
}

// Catalog is an ordered list of categories. Evaluation order is catalog
// order and is a visible property: earlier categories win score ties.
type Catalog struct {
	Categories []Category `yaml:"categories"`

	compiled bool
}

// Compile validates the catalog and compiles all rule patterns. It must
// be called once before the catalog is handed to an engine; afterwards
// the catalog is read-only and safe for concurrent use.
func (c *Catalog) Compile() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	seen := make(map[string]bool, len(c.Categories))
	for ci := range c.Categories {
		cat := &c.Categories[ci]
		if cat.Name == "" {
			return fmt.Errorf("category %d has no name", ci)
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true

		if len(cat.Rules) == 0 {
			return fmt.Errorf("category %q has no rules", cat.Name)
		}
		for ri := range cat.Rules {
			rule := &cat.Rules[ri]
			switch {
			case rule.Pattern != "" && len(rule.AllOf) > 0:
				return fmt.Errorf("category %q rule %d sets both pattern and all_of", cat.Name, ri)
			case rule.Pattern == "" && len(rule.AllOf) == 0:
				return fmt.Errorf("category %q rule %d is empty", cat.Name, ri)
			}
			if rule.Weight < 0 {
				return fmt.Errorf("category %q rule %d has negative weight", cat.Name, ri)
			}
			if rule.Pattern != "" {
				re, err := regexp.Compile(rule.Pattern)
				if err != nil {
					return fmt.Errorf("category %q rule %d: %w", cat.Name, ri, err)
				}
				rule.re = re
			}
		}

		if h := cat.Heuristic; h != nil {
			switch h.Kind {
			case HeuristicRoomLayout, HeuristicVerticalLines, HeuristicLargeScale:
			case HeuristicElectricalSymbols:
				if len(h.Tokens) == 0 {
					return fmt.Errorf("category %q: electrical_symbols heuristic needs tokens", cat.Name)
				}
			default:
				return fmt.Errorf("category %q: unknown heuristic kind %q", cat.Name, h.Kind)
			}
			if h.Weight <= 0 {
				return fmt.Errorf("category %q: heuristic has no weight", cat.Name)
			}
		}
	}

	c.compiled = true
	return nil
}

// Compiled reports whether Compile has run successfully.
func (c *Catalog) Compiled() bool {
	return c.compiled
}

// Names returns the category labels in evaluation order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}
