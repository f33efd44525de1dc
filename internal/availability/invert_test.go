package availability

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertEmptyBusy(t *testing.T) {
	got := Invert(nil, at(t, 9, 0), at(t, 17, 0))
	assert.Equal(t, []Interval{iv(t, 9, 0, 17, 0)}, got)
}

func TestInvertGapsAndTrailing(t *testing.T) {
	merged := []Interval{iv(t, 9, 0, 10, 0), iv(t, 12, 0, 13, 0)}
	got := Invert(merged, at(t, 9, 0), at(t, 17, 0))
	assert.Equal(t, []Interval{iv(t, 10, 0, 12, 0), iv(t, 13, 0, 17, 0)}, got)
}

func TestInvertLeadingGap(t *testing.T) {
	merged := []Interval{iv(t, 10, 0, 17, 0)}
	got := Invert(merged, at(t, 9, 0), at(t, 17, 0))
	assert.Equal(t, []Interval{iv(t, 9, 0, 10, 0)}, got)
}

func TestInvertFullyBusy(t *testing.T) {
	merged := []Interval{iv(t, 8, 0, 18, 0)}
	assert.Empty(t, Invert(merged, at(t, 9, 0), at(t, 17, 0)))
}

func TestInvertEmptyWindow(t *testing.T) {
	assert.Empty(t, Invert(nil, at(t, 9, 0), at(t, 9, 0)))
}

func TestInvertSuppressesZeroLengthGaps(t *testing.T) {
	// Busy starts exactly at the window start: no degenerate leading slot.
	merged := []Interval{iv(t, 9, 0, 10, 0)}
	got := Invert(merged, at(t, 9, 0), at(t, 17, 0))
	assert.Equal(t, []Interval{iv(t, 10, 0, 17, 0)}, got)
	for _, f := range got {
		assert.False(t, f.IsDegenerate())
	}
}

func TestInvertIgnoresBusyOutsideWindow(t *testing.T) {
	merged := []Interval{
		iv(t, 6, 0, 7, 0),
		iv(t, 10, 0, 11, 0),
		iv(t, 20, 0, 21, 0),
	}
	got := Invert(merged, at(t, 9, 0), at(t, 17, 0))
	assert.Equal(t, []Interval{iv(t, 9, 0, 10, 0), iv(t, 11, 0, 17, 0)}, got)
}

// Free slots plus the busy sub-intervals inside the window must tile the
// window exactly, no gaps and no overlaps.
func TestInvertComplementsMergeWithinWindow(t *testing.T) {
	windowStart, windowEnd := at(t, 9, 0), at(t, 17, 0)
	merged := Merge([][]Interval{
		{iv(t, 8, 0, 9, 30), iv(t, 11, 0, 12, 0)},
		{iv(t, 11, 30, 13, 0), iv(t, 16, 45, 18, 0)},
	})
	free := Invert(merged, windowStart, windowEnd)

	var pieces []Interval
	pieces = append(pieces, free...)
	for _, b := range merged {
		s, e := b.Start, b.End
		if s.Before(windowStart) {
			s = windowStart
		}
		if e.After(windowEnd) {
			e = windowEnd
		}
		if s.Before(e) {
			pieces = append(pieces, Interval{Start: s, End: e})
		}
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].Start.Before(pieces[j].Start) })

	require.NotEmpty(t, pieces)
	assert.True(t, pieces[0].Start.Equal(windowStart))
	for i := 1; i < len(pieces); i++ {
		assert.True(t, pieces[i].Start.Equal(pieces[i-1].End),
			"gap or overlap between piece %d and %d", i-1, i)
	}
	assert.True(t, pieces[len(pieces)-1].End.Equal(windowEnd))
}
