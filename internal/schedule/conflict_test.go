package schedule

import (
	"reflect"
	"testing"

	"shiftly_backend/internal/models"
)

func strPtr(s string) *string { return &s }

func testShift(id, employeeID, day, start, end string) models.Shift {
	return models.Shift{
		ID:         id,
		EmployeeID: strPtr(employeeID),
		Day:        day,
		StartTime:  start,
		EndTime:    end,
		Position:   "Cashier",
		Status:     models.NewShiftStatus(models.ShiftStatusPending),
	}
}

func TestAnnotateConflictsOverlapSameDay(t *testing.T) {
	shifts := []models.Shift{
		testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
		testShift("b", "emp1", "2025-06-02", "12:00", "20:00"),
		testShift("c", "emp1", "2025-06-03", "09:00", "17:00"),
	}

	got := AnnotateConflicts(shifts)

	if !got[0].Conflict || !got[1].Conflict {
		t.Errorf("overlapping shifts a and b should both be flagged, got a=%v b=%v", got[0].Conflict, got[1].Conflict)
	}
	if got[2].Conflict {
		t.Error("shift c on a different day should not be flagged")
	}
}

func TestAnnotateConflictsCases(t *testing.T) {
	tests := []struct {
		name   string
		shifts []models.Shift
		want   []bool
	}{
		{
			name: "different employees same window",
			shifts: []models.Shift{
				testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
				testShift("b", "emp2", "2025-06-02", "09:00", "17:00"),
			},
			want: []bool{false, false},
		},
		{
			name: "back to back shifts do not overlap",
			shifts: []models.Shift{
				testShift("a", "emp1", "2025-06-02", "09:00", "13:00"),
				testShift("b", "emp1", "2025-06-02", "13:00", "17:00"),
			},
			want: []bool{false, false},
		},
		{
			name: "overnight shift overlaps late evening shift",
			shifts: []models.Shift{
				testShift("a", "emp1", "2025-06-02", "22:00", "06:00"),
				testShift("b", "emp1", "2025-06-02", "23:00", "23:30"),
			},
			want: []bool{true, true},
		},
		{
			name: "three way overlap flags all",
			shifts: []models.Shift{
				testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
				testShift("b", "emp1", "2025-06-02", "12:00", "20:00"),
				testShift("c", "emp1", "2025-06-02", "16:00", "22:00"),
			},
			want: []bool{true, true, true},
		},
		{
			name: "contained shift",
			shifts: []models.Shift{
				testShift("a", "emp1", "2025-06-02", "08:00", "20:00"),
				testShift("b", "emp1", "2025-06-02", "10:00", "12:00"),
			},
			want: []bool{true, true},
		},
		{
			name: "unparseable times never flagged",
			shifts: []models.Shift{
				testShift("a", "emp1", "2025-06-02", "bogus", "17:00"),
				testShift("b", "emp1", "2025-06-02", "09:00", "17:00"),
			},
			want: []bool{false, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnotateConflicts(tt.shifts)
			for i, want := range tt.want {
				if got[i].Conflict != want {
					t.Errorf("shift %s conflict = %v, want %v", got[i].ID, got[i].Conflict, want)
				}
			}
		})
	}
}

func TestAnnotateConflictsUnassignedShiftsIgnored(t *testing.T) {
	open := models.Shift{ID: "open", Day: "2025-06-02", StartTime: "09:00", EndTime: "17:00"}
	shifts := []models.Shift{open, open}
	for _, s := range AnnotateConflicts(shifts) {
		if s.Conflict {
			t.Error("unassigned shifts must never be flagged as conflicting")
		}
	}
}

func TestAnnotateConflictsDoesNotMutateInput(t *testing.T) {
	shifts := []models.Shift{
		testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
		testShift("b", "emp1", "2025-06-02", "12:00", "20:00"),
	}
	AnnotateConflicts(shifts)
	for _, s := range shifts {
		if s.Conflict {
			t.Fatal("input slice was mutated")
		}
	}
}

func TestAnnotateConflictsIdempotent(t *testing.T) {
	shifts := []models.Shift{
		testShift("a", "emp1", "2025-06-02", "09:00", "17:00"),
		testShift("b", "emp1", "2025-06-02", "12:00", "20:00"),
		testShift("c", "emp2", "2025-06-02", "09:00", "17:00"),
	}
	once := AnnotateConflicts(shifts)
	twice := AnnotateConflicts(once)
	if !reflect.DeepEqual(once, twice) {
		t.Error("running AnnotateConflicts twice changed the result")
	}
}
