package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsFor(t *testing.T) {
	day := time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		tag       string
		wantStart int
		wantEnd   int
	}{
		{"morning", 9, 12},
		{"Mornings", 9, 12},
		{"early morning meeting", 9, 12},
		{"afternoon", 13, 17},
		{"afternoons", 13, 17},
		{"evening", 18, 21},
		{"none", 9, 17},
		{"", 9, 17},
		{"whenever works", 9, 17},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			windows := WindowsFor(tt.tag, day, time.UTC)
			require.Len(t, windows, 1)
			assert.Equal(t, tt.wantStart, windows[0].Start.Hour())
			assert.Equal(t, tt.wantEnd, windows[0].End.Hour())
			assert.Equal(t, day.Day(), windows[0].Start.Day())
		})
	}
}

func TestWindowsForLocalTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2025, time.October, 6, 0, 0, 0, 0, loc)
	windows := WindowsFor("morning", day, loc)
	require.Len(t, windows, 1)

	// 09:00 New York is 13:00 UTC during DST.
	assert.Equal(t, 13, windows[0].Start.UTC().Hour())
	assert.Equal(t, loc, windows[0].Start.Location())
}
