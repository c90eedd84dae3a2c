package time

import (
	"testing"
	"time"
)

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"rfc1123z", "Mon, 02 Jan 2006 15:04:05 -0700", time.Date(2006, 1, 2, 22, 4, 5, 0, time.UTC).Unix()},
		{"rfc1123 gmt", "Tue, 10 Jun 2003 04:00:00 GMT", time.Date(2003, 6, 10, 4, 0, 0, 0, time.UTC).Unix()},
		{"rfc3339", "2024-03-09T14:05:00Z", time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC).Unix()},
		{"rfc3339 offset", "2024-03-09T14:05:00+01:00", time.Date(2024, 3, 9, 13, 5, 0, 0, time.UTC).Unix()},
		{"date only", "2024-03-09", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC).Unix()},
		{"single digit day", "Sat, 9 Mar 2024 14:05:00 +0000", time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC).Unix()},
		{"surrounding whitespace", "  2024-03-09T14:05:00Z\n", time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC).Unix()},
		{"dateparse fallback", "March 9, 2024", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC).Unix()},
		{"empty", "", 0},
		{"garbage", "not a date", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEpoch(tt.input); got != tt.want {
				t.Errorf("ParseEpoch(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
