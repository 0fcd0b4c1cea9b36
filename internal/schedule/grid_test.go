package schedule

import (
	"testing"

	"shiftly_backend/internal/models"
)

func TestProject(t *testing.T) {
	members := []models.TeamMember{
		{ID: "emp1", Name: "John Doe", Position: "Cashier"},
		{ID: "emp2", Name: "Jane Smith", Position: "Manager"},
	}
	days, err := WeekOf("2025-06-02")
	if err != nil {
		t.Fatalf("WeekOf: %v", err)
	}

	shifts := []models.Shift{
		testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
		testShift("b", "emp1", "2025-06-02", "18:00", "22:00"),
		testShift("c", "emp2", "2025-06-03", "10:00", "18:00"),
		testShift("d", "emp3", "2025-06-02", "09:00", "17:00"),  // unknown employee
		testShift("e", "emp1", "2025-06-09", "09:00", "17:00"),  // next week
		{ID: "open", Day: "2025-06-02", StartTime: "09:00", EndTime: "17:00"}, // unassigned
	}

	grid := Project(shifts, members, days)

	cell := grid[Cell{EmployeeID: "emp1", Day: "2025-06-02"}]
	if len(cell) != 2 {
		t.Fatalf("emp1 Monday cell has %d shifts, want 2", len(cell))
	}
	// Insertion order within the cell is preserved.
	if cell[0].ID != "a" || cell[1].ID != "b" {
		t.Errorf("cell order = [%s %s], want [a b]", cell[0].ID, cell[1].ID)
	}

	if got := grid[Cell{EmployeeID: "emp2", Day: "2025-06-03"}]; len(got) != 1 || got[0].ID != "c" {
		t.Errorf("emp2 Tuesday cell = %v, want single shift c", got)
	}

	// Empty cells are distinguishable from populated ones: the key is absent.
	if _, ok := grid[Cell{EmployeeID: "emp2", Day: "2025-06-02"}]; ok {
		t.Error("empty cell should have no entry in the grid")
	}
	if _, ok := grid[Cell{EmployeeID: "emp3", Day: "2025-06-02"}]; ok {
		t.Error("shift for unknown employee should not produce a cell")
	}
	if _, ok := grid[Cell{EmployeeID: "emp1", Day: "2025-06-09"}]; ok {
		t.Error("shift outside the day range should not produce a cell")
	}
}

func TestScheduledMinutes(t *testing.T) {
	shifts := []models.Shift{
		testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
		testShift("b", "emp1", "2025-06-03", "22:00", "06:00"),
		testShift("c", "emp2", "2025-06-02", "09:00", "09:30"),
		{ID: "open", Day: "2025-06-02", StartTime: "09:00", EndTime: "17:00"},
	}
	totals := ScheduledMinutes(shifts)
	if totals["emp1"] != 16*60 {
		t.Errorf("emp1 scheduled %d minutes, want %d", totals["emp1"], 16*60)
	}
	if totals["emp2"] != 30 {
		t.Errorf("emp2 scheduled %d minutes, want 30", totals["emp2"])
	}
	if _, ok := totals[""]; ok {
		t.Error("unassigned shifts must not contribute to totals")
	}
}

func TestWeekHelpers(t *testing.T) {
	tests := []struct {
		day        string
		wantMonday string
	}{
		{day: "2025-06-02", wantMonday: "2025-06-02"}, // Monday maps to itself
		{day: "2025-06-04", wantMonday: "2025-06-02"},
		{day: "2025-06-08", wantMonday: "2025-06-02"}, // Sunday belongs to the preceding Monday's week
	}
	for _, tt := range tests {
		got, err := StartOfWeek(tt.day)
		if err != nil {
			t.Fatalf("StartOfWeek(%q): %v", tt.day, err)
		}
		if got != tt.wantMonday {
			t.Errorf("StartOfWeek(%q) = %q, want %q", tt.day, got, tt.wantMonday)
		}
	}

	week, err := WeekOf("2025-06-04")
	if err != nil {
		t.Fatalf("WeekOf: %v", err)
	}
	want := []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06", "2025-06-07", "2025-06-08"}
	for i := range want {
		if week[i] != want[i] {
			t.Errorf("week[%d] = %q, want %q", i, week[i], want[i])
		}
	}

	if label, _ := WeekdayLabel("2025-06-02"); label != "Mon" {
		t.Errorf("WeekdayLabel = %q, want Mon", label)
	}
	if _, err := StartOfWeek("Tue"); err == nil {
		t.Error("weekday label should not parse as a day")
	}
}
