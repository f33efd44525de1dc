package timeframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	now := time.Date(2025, time.October, 6, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeFrame string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"today", "today", midnight, midnight.AddDate(0, 0, 1)},
		{"today embedded", "later today if possible", midnight, midnight.AddDate(0, 0, 1)},
		{"tomorrow", "Tomorrow afternoon", midnight.AddDate(0, 0, 1), midnight.AddDate(0, 0, 2)},
		{"next week falls back", "next week", midnight, midnight.AddDate(0, 0, 7)},
		{"empty falls back", "", midnight, midnight.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.timeFrame, now, time.UTC)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
		})
	}
}

func TestResolveUsesLocalMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 21:00 UTC on Oct 6 is already Oct 7 in Kolkata.
	now := time.Date(2025, time.October, 6, 21, 0, 0, 0, time.UTC)
	got := Resolve("today", now, loc)

	assert.Equal(t, time.Date(2025, time.October, 7, 0, 0, 0, 0, loc), got.Start)
	assert.Equal(t, time.Date(2025, time.October, 8, 0, 0, 0, 0, loc), got.End)
}
