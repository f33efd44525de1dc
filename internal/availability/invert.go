package availability

import "time"

// Invert subtracts an already-merged busy sequence from a single window,
// returning the free sub-intervals within it, ordered by start and each of
// strictly positive length.
//
// merged must be sorted and non-overlapping; this is the caller's contract
// and is not re-validated here. Busy intervals outside the window are
// harmless: gaps are clamped to the window bounds.
func Invert(merged []Interval, windowStart, windowEnd time.Time) []Interval {
	if !windowStart.Before(windowEnd) {
		return nil
	}
	if len(merged) == 0 {
		return []Interval{{Start: windowStart, End: windowEnd}}
	}

	var free []Interval
	cursor := windowStart
	for _, busy := range merged {
		if !cursor.Before(windowEnd) {
			break
		}
		if cursor.Before(busy.Start) {
			end := busy.Start
			if windowEnd.Before(end) {
				end = windowEnd
			}
			free = append(free, Interval{Start: cursor, End: end})
		}
		if busy.End.After(cursor) {
			cursor = busy.End
		}
	}
	if cursor.Before(windowEnd) {
		free = append(free, Interval{Start: cursor, End: windowEnd})
	}
	return free
}
