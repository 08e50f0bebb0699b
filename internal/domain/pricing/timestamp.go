package pricing

import (
	"strings"
	"time"
)

// Layouts accepted for check-in and check-out. Values without a zone offset are read as
// wall-clock times in a fixed frame, so the hour written is the hour billed.
var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

// ParseTimestamp reports false for empty or unrecognized input. A bare date is not a
// timestamp: booking times always carry the hour they are billed from.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateBound reads a list filter bound. It also accepts a bare date, read as 00:00.
func ParseDateBound(s string) (time.Time, bool) {
	if t, ok := ParseTimestamp(s); ok {
		return t, true
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	return t, err == nil
}
