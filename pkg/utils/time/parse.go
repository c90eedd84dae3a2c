// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the date formats found in RSS, Atom and JSON feeds, falling back to dateparse

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Common time formats found in RSS/Atom feeds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using the known feed formats
// first and dateparse second. Ambiguous values without a zone are read as UTC.
// Returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseIn(timeStr, time.UTC); err == nil {
		return t
	}

	return time.Time{}
}

// ParseEpoch parses a date string into epoch seconds.
// Unparseable or empty input yields 0, the "unknown" sentinel.
func ParseEpoch(timeStr string) int64 {
	t := ParseFlexibleTime(timeStr)
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
