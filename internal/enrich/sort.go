package enrich

import (
	"sort"
	"strconv"

	"scholarbib/internal/scholar"
)

// SortByYearDesc orders publication summaries newest first. Years that are
// missing or unparsable sort as 0, placing them last. The sort is stable,
// so equal years keep their fetch order.
func SortByYearDesc(pubs []scholar.PublicationSummary) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return summaryYear(pubs[i]) > summaryYear(pubs[j])
	})
}

func summaryYear(s scholar.PublicationSummary) int {
	year, err := strconv.Atoi(s.Year)
	if err != nil {
		return 0
	}
	return year
}
