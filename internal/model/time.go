package model

import "time"

// TimeLayout is the fixed-width UTC layout used for every stored timestamp.
// Lexical order of formatted values matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

const (
	dateDisplayLayout = "January 02, 2006"
	timeDisplayLayout = "03:04 PM"
	recently          = "Recently"
)

// Timestamp formats t for storage.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTimestamp accepts the storage layout and the looser ISO forms found in
// older databases.
func ParseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, raw)
	if err == nil {
		return t, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05"} {
		if t, lerr := time.Parse(layout, raw); lerr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatDate renders a stored timestamp as a calendar date, or "Recently"
// when it cannot be parsed.
func FormatDate(raw string) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return recently
	}
	return t.Format(dateDisplayLayout)
}

// FormatTime renders a stored timestamp as a clock time, or "Recently".
func FormatTime(raw string) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return recently
	}
	return t.Format(timeDisplayLayout)
}
