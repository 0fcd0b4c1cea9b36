package schedule

import "shiftly_backend/internal/models"

// interval is a shift's time window in minutes since midnight of its day.
// Overnight end times are pushed past 1440 so comparisons stay linear.
type interval struct {
	start int
	end   int
}

func shiftInterval(s *models.Shift) (interval, bool) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return interval{}, false
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return interval{}, false
	}
	// End before start wraps past midnight; equal times are a zero-length
	// window, matching DurationMinutes.
	if end < start {
		end += minutesPerDay
	}
	return interval{start: start, end: end}, true
}

func (a interval) overlaps(b interval) bool {
	// Half-open [start, end): back-to-back shifts do not conflict.
	return a.start < b.end && b.start < a.end
}

// AnnotateConflicts returns a copy of shifts with the Conflict flag set on
// every shift whose [start, end) window overlaps another shift for the same
// employee on the same day. All members of an overlapping group are flagged
// equally; no precedence is assigned. Unassigned shifts and shifts with
// unparseable times are never flagged. The input slice is not mutated, and
// the function is idempotent.
func AnnotateConflicts(shifts []models.Shift) []models.Shift {
	out := make([]models.Shift, len(shifts))
	copy(out, shifts)

	type cellKey struct {
		employeeID string
		day        string
	}
	groups := make(map[cellKey][]int)
	for i := range out {
		out[i].Conflict = false
		if !out[i].Assigned() {
			continue
		}
		key := cellKey{employeeID: *out[i].EmployeeID, day: out[i].Day}
		groups[key] = append(groups[key], i)
	}

	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		for i := 0; i < len(idxs); i++ {
			a, ok := shiftInterval(&out[idxs[i]])
			if !ok {
				continue
			}
			for j := i + 1; j < len(idxs); j++ {
				b, ok := shiftInterval(&out[idxs[j]])
				if !ok {
					continue
				}
				if a.overlaps(b) {
					out[idxs[i]].Conflict = true
					out[idxs[j]].Conflict = true
				}
			}
		}
	}
	return out
}
