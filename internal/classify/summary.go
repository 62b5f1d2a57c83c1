package classify

import (
	"fmt"
	"io"
	"sort"

	"github.com/bouwdoc/viewtype/models"
)

// RunSummary aggregates a classification run for the operator.
type RunSummary struct {
	Pages     int
	Failed    int
	ViewTypes map[string]int
}

// BuildSummary tallies view-type distribution and failures.
func BuildSummary(entries []models.PageEntry) RunSummary {
	summary := RunSummary{ViewTypes: make(map[string]int)}
	for _, e := range entries {
		summary.Pages++
		if e.Error != "" {
			summary.Failed++
			continue
		}
		summary.ViewTypes[e.ViewType]++
	}
	return summary
}

// PrintSummary writes a human-readable run summary, view types sorted
// by count descending.
func PrintSummary(w io.Writer, summary RunSummary) {
	fmt.Fprintf(w, "--- Classification Summary ---\n")
	fmt.Fprintf(w, "Pages: %d (failed: %d)\n", summary.Pages, summary.Failed)

	type kv struct {
		viewType string
		count    int
	}
	sorted := make([]kv, 0, len(summary.ViewTypes))
	for vt, n := range summary.ViewTypes {
		sorted = append(sorted, kv{viewType: vt, count: n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].viewType < sorted[j].viewType
	})

	for _, item := range sorted {
		fmt.Fprintf(w, "  %-16s %d\n", item.viewType, item.count)
	}
}
