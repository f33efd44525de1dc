// Package availability computes free meeting slots from the busy-interval
// reports of one or more calendars. Everything here is pure interval
// arithmetic over time.Time values; timestamp strings are parsed exactly
// once at the ingestion boundary and never threaded further.
package availability

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval validates that start is not after end.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.After(end) {
		return Interval{}, &ValidationError{Start: start, End: end}
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsDegenerate reports a zero-length interval. Producers drop these before
// handing intervals to consumers that expect positive length.
func (i Interval) IsDegenerate() bool {
	return !i.Start.Before(i.End)
}

func (i Interval) String() string {
	return i.Start.Format(time.RFC3339) + " -> " + i.End.Format(time.RFC3339)
}

// ParseError reports a busy-period timestamp that could not be converted to
// an instant.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("availability: parsing timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports an interval whose start is after its end.
type ValidationError struct {
	Start time.Time
	End   time.Time
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("availability: interval start %s is after end %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// ParseInterval is the ingestion boundary for serialized busy periods. Both
// timestamps must be RFC 3339; the result is normalized to UTC so merge and
// inversion arithmetic compares instants directly.
func ParseInterval(start, end string) (Interval, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return Interval{}, &ParseError{Value: start, Err: err}
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return Interval{}, &ParseError{Value: end, Err: err}
	}
	return NewInterval(s.UTC(), e.UTC())
}
