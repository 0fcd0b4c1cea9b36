package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DayLayout is the wire format for schedule days: an absolute calendar date.
// The source UI mixed weekday labels ("Mon") with dates; labels cannot tell
// this week's Monday from next week's, so absolute dates are canonical here.
const DayLayout = "2006-01-02"

// DaysPerWeek is the size of the canonical scheduling week.
const DaysPerWeek = 7

// ErrInvalidDay is returned for a day string that is not a YYYY-MM-DD date.
var ErrInvalidDay = errors.New("invalid day, expected YYYY-MM-DD")

// ParseDay validates and parses a schedule day.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	return t, nil
}

// StartOfWeek returns the Monday of the week containing day. Weeks start on
// Monday, matching the schedule grid.
func StartOfWeek(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset).Format(DayLayout), nil
}

// WeekOf returns the seven days of the week containing day, Monday first.
func WeekOf(day string) ([]string, error) {
	monday, err := StartOfWeek(day)
	if err != nil {
		return nil, err
	}
	start, _ := time.Parse(DayLayout, monday)
	days := make([]string, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i).Format(DayLayout)
	}
	return days, nil
}

// AddDays shifts a day by n calendar days.
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayLayout), nil
}

// WeekdayLabel returns the short label ("Mon".."Sun") the grid shows for a day.
func WeekdayLabel(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.Format("Mon"), nil
}
