package stockchart

import "slices"

// Nearest returns the index of the bar chronologically closest to the query
// date. The series must be sorted ascending by date and non-empty.
//
// The search is an ordered binary search, O(log n). Distance is measured in
// whole days; on an exact tie the earlier bar wins. Queries before the first
// bar clamp to it, queries at or past the last bar clamp to the last. The
// function is pure: same inputs, same index, no state.
func Nearest(series []EnrichedBar, query Date) int {
	i, found := slices.BinarySearchFunc(series, query, func(b EnrichedBar, q Date) int {
		return b.Date.Compare(q)
	})
	if found {
		return i
	}
	// i is the insertion point: series[i-1].Date < query < series[i].Date.
	if i == 0 {
		return 0
	}
	if i == len(series) {
		return len(series) - 1
	}
	before := query.Sub(series[i-1].Date)
	after := series[i].Date.Sub(query)
	if before > after {
		return i
	}
	return i - 1
}

// NearestBar is Nearest returning the bar itself.
func NearestBar(series []EnrichedBar, query Date) EnrichedBar {
	return series[Nearest(series, query)]
}
