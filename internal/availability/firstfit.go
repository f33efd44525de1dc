package availability

import "time"

// FirstFit returns the earliest candidate long enough to hold d, truncated
// to exactly d from the candidate's start. The second return value is false
// when no candidate qualifies; that is an expected outcome, not an error.
func FirstFit(candidates SortedCandidates, d time.Duration) (Interval, bool) {
	for _, c := range candidates {
		if c.Duration() >= d {
			return Interval{Start: c.Start, End: c.Start.Add(d)}, true
		}
	}
	return Interval{}, false
}
