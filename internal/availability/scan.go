package availability

import (
	"sort"
	"time"
)

// Scan walks the request window day by day, builds the preference window(s)
// for each day, clamps them to the request window and inverts the merged
// busy sequence inside each one. Results are normalized to UTC.
//
// The accumulated slots come out in day-then-window order, which is NOT
// globally sorted by start. Callers must go through SortCandidates before
// first-fit selection.
func Scan(requestWindow Interval, tag string, merged []Interval, loc *time.Location) []Interval {
	var candidates []Interval

	start := requestWindow.Start.In(loc)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	for day.Before(requestWindow.End) {
		for _, window := range WindowsFor(tag, day, loc) {
			clampedStart := window.Start
			if clampedStart.Before(requestWindow.Start) {
				clampedStart = requestWindow.Start
			}
			clampedEnd := window.End
			if clampedEnd.After(requestWindow.End) {
				clampedEnd = requestWindow.End
			}
			if !clampedStart.Before(clampedEnd) {
				continue
			}
			candidates = append(candidates, Invert(merged, clampedStart.UTC(), clampedEnd.UTC())...)
		}
		day = day.AddDate(0, 0, 1)
	}
	return candidates
}

// SortedCandidates is a candidate sequence known to be ordered by ascending
// start. SortCandidates is its only producer, which keeps unsorted scanner
// output from reaching FirstFit.
type SortedCandidates []Interval

func SortCandidates(candidates []Interval) SortedCandidates {
	sorted := make(SortedCandidates, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
