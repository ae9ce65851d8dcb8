package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockToMinutes parses an "HH:MM" clock label into minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q: %w", clock, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q: %w", clock, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return hours*60 + minutes, nil
}

// MinutesToClock formats minutes since midnight as a zero-padded "HH:MM".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDate renders a time as the upstream service's date format.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDurationShort renders a minute count as "2h 30m" style text.
func FormatDurationShort(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
