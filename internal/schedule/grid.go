package schedule

import "shiftly_backend/internal/models"

// Cell addresses one slot of the schedule grid.
type Cell struct {
	EmployeeID string
	Day        string
}

// Grid is the 2-D lookup the schedule view renders: employee x day to the
// shifts in that slot. A missing key is an empty cell, which the UI renders
// as an "add shift" affordance.
type Grid map[Cell][]models.Shift

// Project builds the grid for the given employees and days. Only shifts
// matching both an employee and a day in the requested axes appear; within
// a cell, input order is preserved. Shifts for unknown employees (dangling
// references) or days outside the range simply do not land in any cell.
func Project(shifts []models.Shift, employees []models.TeamMember, days []string) Grid {
	wantEmployee := make(map[string]bool, len(employees))
	for _, e := range employees {
		wantEmployee[e.ID] = true
	}
	wantDay := make(map[string]bool, len(days))
	for _, d := range days {
		wantDay[d] = true
	}

	grid := make(Grid)
	for _, s := range shifts {
		if !s.Assigned() {
			continue
		}
		if !wantEmployee[*s.EmployeeID] || !wantDay[s.Day] {
			continue
		}
		key := Cell{EmployeeID: *s.EmployeeID, Day: s.Day}
		grid[key] = append(grid[key], s)
	}
	return grid
}

// ScheduledMinutes sums shift lengths per employee across the given shifts,
// skipping unassigned shifts and shifts with unparseable times.
func ScheduledMinutes(shifts []models.Shift) map[string]int {
	totals := make(map[string]int)
	for _, s := range shifts {
		if !s.Assigned() {
			continue
		}
		minutes, err := DurationMinutes(s.StartTime, s.EndTime)
		if err != nil {
			continue
		}
		totals[*s.EmployeeID] += minutes
	}
	return totals
}
