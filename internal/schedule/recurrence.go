package schedule

import (
	"errors"
	"fmt"

	"shiftly_backend/internal/models"
)

// ExpandMode selects how a shift template is fanned out across days.
type ExpandMode string

const (
	// ExpandSingleDay duplicates the template once, on its own day.
	ExpandSingleDay ExpandMode = "single_day"
	// ExpandWholeWeek produces one copy per day of the template's week,
	// excluding the template's own day.
	ExpandWholeWeek ExpandMode = "whole_week"
	// ExpandSelectedDays produces one copy per explicitly chosen day,
	// excluding the template's own day.
	ExpandSelectedDays ExpandMode = "selected_days"
)

// ErrInvalidExpandMode is returned for an unrecognized expansion mode.
var ErrInvalidExpandMode = errors.New("invalid expand mode")

// Expand fans a shift template out into independent draft shifts, one per
// target day. Drafts clone the employee, times, position, note and covering
// of the template but carry no identity: the caller pipes them into the
// shift store, which assigns fresh ids and a pending status, so editing one
// sibling later never affects another. Expand itself performs no writes.
func Expand(template models.Shift, mode ExpandMode, selectedDays []string) ([]models.Shift, error) {
	var targetDays []string
	switch mode {
	case ExpandSingleDay:
		targetDays = []string{template.Day}
	case ExpandWholeWeek:
		week, err := WeekOf(template.Day)
		if err != nil {
			return nil, err
		}
		for _, day := range week {
			if day != template.Day {
				targetDays = append(targetDays, day)
			}
		}
	case ExpandSelectedDays:
		for _, day := range selectedDays {
			if _, err := ParseDay(day); err != nil {
				return nil, err
			}
			if day != template.Day {
				targetDays = append(targetDays, day)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpandMode, mode)
	}

	drafts := make([]models.Shift, 0, len(targetDays))
	for _, day := range targetDays {
		draft := models.Shift{
			EmployeeID: template.EmployeeID,
			Day:        day,
			StartTime:  template.StartTime,
			EndTime:    template.EndTime,
			Position:   template.Position,
			Note:       template.Note,
		}
		if template.Covering != nil {
			covering := *template.Covering
			draft.Covering = &covering
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
