// Package schedule holds the pure scheduling logic: clock/duration
// arithmetic, conflict detection, recurrence expansion and grid projection.
// Nothing in this package touches storage or HTTP; services compose these
// functions around the shift repository.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClock is returned for a time string that is not a valid
// 24-hour HH:MM value.
var ErrInvalidClock = errors.New("invalid clock time, expected HH:MM in 24-hour format")

const minutesPerDay = 24 * 60

// ParseClock parses an HH:MM 24-hour wall-clock string into minutes since
// midnight. The original front end silently treated malformed input as zero,
// which masked bad data; here it is an explicit validation failure.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return hour*60 + minute, nil
}

// DurationMinutes returns the elapsed minutes between start and end clock
// times. An end numerically before the start denotes an overnight shift and
// wraps past midnight, so the result is always in [0, 1440).
func DurationMinutes(startTime, endTime string) (int, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	elapsed := end - start
	if elapsed < 0 {
		elapsed += minutesPerDay
	}
	return elapsed, nil
}

// ComputeDuration formats the elapsed time between start and end as "8h" or
// "0h 30m", matching the display format of the schedule grid.
func ComputeDuration(startTime, endTime string) (string, error) {
	elapsed, err := DurationMinutes(startTime, endTime)
	if err != nil {
		return "", err
	}
	return FormatDuration(elapsed), nil
}

// FormatDuration renders a minute count as "{h}h" when it falls on a whole
// hour, otherwise "{h}h {m}m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rem)
}
