// Package timeframe translates the free-text time frame of a parsed request
// ("today", "tomorrow", "next week") into a concrete search window.
package timeframe

import (
	"strings"
	"time"

	"github.com/chiragkumaaar/calendar-agent/internal/availability"
)

// DefaultSpanDays is the fallback window when the time frame names no
// recognized day.
const DefaultSpanDays = 7

// Resolve maps a time-frame description onto a half-open window of local
// days. "today" covers today, "tomorrow" the next day; anything else covers
// the next DefaultSpanDays days starting today. Matching is by substring,
// case-insensitive.
func Resolve(timeFrame string, now time.Time, loc *time.Location) availability.Interval {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	tf := strings.ToLower(timeFrame)
	switch {
	case strings.Contains(tf, "today"):
		return availability.Interval{Start: midnight, End: midnight.AddDate(0, 0, 1)}
	case strings.Contains(tf, "tomorrow"):
		start := midnight.AddDate(0, 0, 1)
		return availability.Interval{Start: start, End: start.AddDate(0, 0, 1)}
	}
	return availability.Interval{Start: midnight, End: midnight.AddDate(0, 0, DefaultSpanDays)}
}
