package scheduler

import (
	"fmt"
	"time"

	"github.com/chiragkumaaar/calendar-agent/internal"
	"github.com/chiragkumaaar/calendar-agent/internal/availability"
)

// ingestBusy converts the wire-form busy reports of each calendar into
// instant intervals, one list per calendar. Zero-length periods are dropped
// here so downstream consumers only ever see positive-length intervals.
func ingestBusy(busyByCalendar map[string][]internal.BusyPeriod) ([][]availability.Interval, error) {
	busyLists := make([][]availability.Interval, 0, len(busyByCalendar))
	for email, periods := range busyByCalendar {
		var list []availability.Interval
		for _, p := range periods {
			interval, err := availability.ParseInterval(p.Start, p.End)
			if err != nil {
				return nil, fmt.Errorf("busy report for %s: %w", email, err)
			}
			if interval.IsDegenerate() {
				continue
			}
			list = append(list, interval)
		}
		busyLists = append(busyLists, list)
	}
	return busyLists, nil
}

func describe(req *internal.MeetingRequest) string {
	// The raw user prompt deliberately stays out of the invite body.
	return fmt.Sprintf("Scheduled by calendar-agent.\nTopic: %s\nDuration: %d minutes",
		req.Summary(), req.DurationMinutes)
}

func formatDateTime(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 15:04 MST")
}
