package availability

import (
	"strings"
	"time"
)

// Per-day preference windows, in local hours.
const (
	morningStartHour   = 9
	morningEndHour     = 12
	afternoonStartHour = 13
	afternoonEndHour   = 17
	eveningStartHour   = 18
	eveningEndHour     = 21
	workdayStartHour   = 9
	workdayEndHour     = 17
)

// WindowsFor translates a preference tag into the concrete local-time
// window(s) of the given day. Matching is by substring, case-insensitive,
// so "Mornings" and "morning meeting" both select the morning window.
// Unrecognized tags (including "none") fall back to the full workday.
//
// The result is a slice: current tags yield exactly one window, but callers
// must not assume that.
func WindowsFor(tag string, day time.Time, loc *time.Location) []Interval {
	local := day.In(loc)
	year, month, dom := local.Date()
	at := func(hour int) time.Time {
		return time.Date(year, month, dom, hour, 0, 0, 0, loc)
	}

	tag = strings.ToLower(tag)
	switch {
	case strings.Contains(tag, "morning"):
		return []Interval{{Start: at(morningStartHour), End: at(morningEndHour)}}
	case strings.Contains(tag, "afternoon"):
		return []Interval{{Start: at(afternoonStartHour), End: at(afternoonEndHour)}}
	case strings.Contains(tag, "evening"):
		return []Interval{{Start: at(eveningStartHour), End: at(eveningEndHour)}}
	}
	return []Interval{{Start: at(workdayStartHour), End: at(workdayEndHour)}}
}
