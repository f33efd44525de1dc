package availability

import "sort"

// Merge collapses the busy intervals of any number of calendars into a
// single time-ordered, non-overlapping sequence.
//
// Intervals that merely touch (next.Start == current.End) are kept
// separate: the sweep extends the current interval only on a strict
// overlap.
func Merge(busyLists [][]Interval) []Interval {
	var all []Interval
	for _, list := range busyLists {
		all = append(all, list...)
	}
	if len(all) == 0 {
		return nil
	}

	// Ties between equal starts are broken arbitrarily; the sweep result
	// is the same either way.
	sort.Slice(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})

	merged := make([]Interval, 0, len(all))
	current := all[0]
	for _, next := range all[1:] {
		if next.Start.Before(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
