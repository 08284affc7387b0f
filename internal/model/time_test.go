package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampIsFixedWidth(t *testing.T) {
	ts := Timestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)))
	assert.Equal(t, "2025-01-02T02:04:05.000000Z", ts)

	parsed, err := ParseTimestamp(ts)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 1, 2, 2, 4, 5, 0, time.UTC)))
}

func TestFormatDateAndTime(t *testing.T) {
	tests := []struct {
		raw  string
		date string
		time string
	}{
		{"2025-03-14T09:30:00.000000Z", "March 14, 2025", "09:30 AM"},
		{"2025-03-14T21:05:00.123456", "March 14, 2025", "09:05 PM"},
		{"2025-12-01 18:00:00", "December 01, 2025", "06:00 PM"},
		{"yesterday", "Recently", "Recently"},
		{"", "Recently", "Recently"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.date, FormatDate(tt.raw))
			assert.Equal(t, tt.time, FormatTime(tt.raw))
		})
	}
}

func TestGoalDisplay(t *testing.T) {
	g := Goal{Text: "Learn python", DateAdded: "not a date"}
	assert.Equal(t, GoalDisplay{Text: "Learn python", Date: "Recently"}, g.Display())
}

func TestProgressStatusValid(t *testing.T) {
	assert.True(t, ProgressYes.Valid())
	assert.True(t, ProgressMaybe.Valid())
	assert.False(t, ProgressStatus("sometimes").Valid())
}
