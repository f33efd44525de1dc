package google

import (
	"time"

	"github.com/google/uuid"

	"google.golang.org/api/calendar/v3"

	"github.com/chiragkumaaar/calendar-agent/internal"
)

// newBusyReport flattens a free/busy response into per-calendar busy
// periods, timestamps kept in their wire form for the ingestion boundary to
// parse.
func newBusyReport(resp *calendar.FreeBusyResponse) map[string][]internal.BusyPeriod {
	report := make(map[string][]internal.BusyPeriod, len(resp.Calendars))
	for email, cal := range resp.Calendars {
		periods := make([]internal.BusyPeriod, 0, len(cal.Busy))
		for _, b := range cal.Busy {
			periods = append(periods, internal.BusyPeriod{
				Start: b.Start,
				End:   b.End,
			})
		}
		report[email] = periods
	}
	return report
}

func newEvent(event *calendar.Event) *internal.Event {
	startsAt, _ := time.Parse(time.RFC3339, event.Start.DateTime)
	endsAt, _ := time.Parse(time.RFC3339, event.End.DateTime)

	attendees := make([]string, 0, len(event.Attendees))
	for _, a := range event.Attendees {
		attendees = append(attendees, a.Email)
	}
	return &internal.Event{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Attendees:   attendees,
		HTMLLink:    event.HtmlLink,
	}
}

func newGoogleEvent(event *internal.Event) *calendar.Event {
	attendees := make([]*calendar.EventAttendee, len(event.Attendees))
	for i, email := range event.Attendees {
		attendees[i] = &calendar.EventAttendee{Email: email}
	}

	gevent := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start: &calendar.EventDateTime{
			DateTime: event.StartsAt.Format(time.RFC3339),
			TimeZone: event.StartsAt.Location().String(),
		},
		End: &calendar.EventDateTime{
			DateTime: event.EndsAt.Format(time.RFC3339),
			TimeZone: event.EndsAt.Location().String(),
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: true,
		},
	}

	// Only invite-bearing events get a Meet link.
	if len(attendees) > 0 {
		gevent.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		}
	}
	return gevent
}
