package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, dom, hour, min int) time.Time {
	t.Helper()
	return time.Date(2025, time.October, dom, hour, min, 0, 0, time.UTC)
}

func TestScanMultipleDays(t *testing.T) {
	window := Interval{Start: day(t, 6, 0, 0), End: day(t, 8, 0, 0)}

	got := Scan(window, "morning", nil, time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, day(t, 6, 9, 0), got[0].Start)
	assert.Equal(t, day(t, 6, 12, 0), got[0].End)
	assert.Equal(t, day(t, 7, 9, 0), got[1].Start)
	assert.Equal(t, day(t, 7, 12, 0), got[1].End)
}

func TestScanClampsToRequestWindow(t *testing.T) {
	// Request starts mid-morning and ends before the workday does.
	window := Interval{Start: day(t, 6, 10, 0), End: day(t, 6, 15, 0)}

	got := Scan(window, "none", nil, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, day(t, 6, 10, 0), got[0].Start)
	assert.Equal(t, day(t, 6, 15, 0), got[0].End)
}

func TestScanSkipsDaysOutsidePreference(t *testing.T) {
	// Request window ends at 08:00, before the morning window opens.
	window := Interval{Start: day(t, 6, 0, 0), End: day(t, 6, 8, 0)}
	assert.Empty(t, Scan(window, "morning", nil, time.UTC))
}

func TestScanSubtractsBusy(t *testing.T) {
	window := Interval{Start: day(t, 6, 0, 0), End: day(t, 7, 0, 0)}
	merged := []Interval{{Start: day(t, 6, 10, 0), End: day(t, 6, 11, 0)}}

	got := Scan(window, "morning", merged, time.UTC)
	assert.Equal(t, []Interval{
		{Start: day(t, 6, 9, 0), End: day(t, 6, 10, 0)},
		{Start: day(t, 6, 11, 0), End: day(t, 6, 12, 0)},
	}, got)
}

func TestScanLocalWindowsConvertToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2025, time.October, 6, 0, 0, 0, 0, loc)
	window := Interval{Start: start, End: start.AddDate(0, 0, 1)}

	got := Scan(window, "morning", nil, loc)
	require.Len(t, got, 1)
	assert.Equal(t, time.UTC, got[0].Start.Location())
	assert.Equal(t, 13, got[0].Start.Hour())
}

func TestSortCandidates(t *testing.T) {
	unsorted := []Interval{
		{Start: day(t, 7, 9, 0), End: day(t, 7, 12, 0)},
		{Start: day(t, 6, 9, 0), End: day(t, 6, 12, 0)},
		{Start: day(t, 6, 13, 0), End: day(t, 6, 17, 0)},
	}
	sorted := SortCandidates(unsorted)

	require.Len(t, sorted, 3)
	assert.Equal(t, day(t, 6, 9, 0), sorted[0].Start)
	assert.Equal(t, day(t, 6, 13, 0), sorted[1].Start)
	assert.Equal(t, day(t, 7, 9, 0), sorted[2].Start)

	// The input slice must stay untouched.
	assert.Equal(t, day(t, 7, 9, 0), unsorted[0].Start)
}
