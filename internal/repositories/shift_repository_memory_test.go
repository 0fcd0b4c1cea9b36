package repositories

import (
	"errors"
	"testing"

	"shiftly_backend/internal/models"
)

func memShift(employeeID, day, start, end string) *models.Shift {
	return &models.Shift{
		EmployeeID: &employeeID,
		Day:        day,
		StartTime:  start,
		EndTime:    end,
		Position:   "Cashier",
		Duration:   "8h",
	}
}

func TestMemoryStoreCreateDefaults(t *testing.T) {
	repo := NewMemoryShiftRepository()

	created, err := repo.CreateShift(nil, memShift("emp1", "2025-06-02", "09:00", "17:00"))
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if created.ID == "" {
		t.Error("create must assign an id")
	}
	if created.Status.Type != models.ShiftStatusPending {
		t.Errorf("default status = %s, want pending", created.Status.Type)
	}
	if created.Status.Label != "Pending" {
		t.Errorf("default status label = %q, want Pending", created.Status.Label)
	}

	other, err := repo.CreateShift(nil, memShift("emp2", "2025-06-02", "09:00", "17:00"))
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if other.ID == created.ID {
		t.Error("ids must be unique across creates")
	}
}

func TestMemoryStorePreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryShiftRepository()
	days := []string{"2025-06-04", "2025-06-02", "2025-06-03"}
	var ids []string
	for _, day := range days {
		created, err := repo.CreateShift(nil, memShift("emp1", day, "09:00", "17:00"))
		if err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
		ids = append(ids, created.ID)
	}

	listed, err := repo.GetShiftsByDayRange("", "")
	if err != nil {
		t.Fatalf("GetShiftsByDayRange: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("listed %d shifts, want 3", len(listed))
	}
	for i := range ids {
		if listed[i].ID != ids[i] {
			t.Errorf("position %d holds %s, want %s (insertion order)", i, listed[i].ID, ids[i])
		}
	}
}

func TestMemoryStoreDayRangeFilter(t *testing.T) {
	repo := NewMemoryShiftRepository()
	for _, day := range []string{"2025-06-01", "2025-06-02", "2025-06-08", "2025-06-09"} {
		if _, err := repo.CreateShift(nil, memShift("emp1", day, "09:00", "17:00")); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}
	listed, err := repo.GetShiftsByDayRange("2025-06-02", "2025-06-08")
	if err != nil {
		t.Fatalf("GetShiftsByDayRange: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("range returned %d shifts, want 2", len(listed))
	}
	if listed[0].Day != "2025-06-02" || listed[1].Day != "2025-06-08" {
		t.Errorf("range returned days %s and %s", listed[0].Day, listed[1].Day)
	}
}

func TestMemoryStoreUpdateAndDeleteMissing(t *testing.T) {
	repo := NewMemoryShiftRepository()

	missing := memShift("emp1", "2025-06-02", "09:00", "17:00")
	missing.ID = "no-such-shift"
	if _, err := repo.UpdateShift(nil, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing id error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteShift(nil, "no-such-shift"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete of missing id error = %v, want ErrNotFound", err)
	}

	// The failed calls must leave the store unchanged.
	listed, _ := repo.GetShiftsByDayRange("", "")
	if len(listed) != 0 {
		t.Errorf("store has %d shifts after failed update/delete, want 0", len(listed))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	repo := NewMemoryShiftRepository()
	created, _ := repo.CreateShift(nil, memShift("emp1", "2025-06-02", "09:00", "17:00"))

	if err := repo.DeleteShift(nil, created.ID); err != nil {
		t.Fatalf("DeleteShift: %v", err)
	}
	if _, err := repo.GetShiftByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted shift still readable, err = %v", err)
	}
	if err := repo.DeleteShift(nil, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStorePublishPending(t *testing.T) {
	repo := NewMemoryShiftRepository()

	pending1, _ := repo.CreateShift(nil, memShift("emp1", "2025-06-02", "09:00", "17:00"))
	pending2, _ := repo.CreateShift(nil, memShift("emp2", "2025-06-03", "10:00", "18:00"))

	open := memShift("", "2025-06-04", "09:00", "17:00")
	open.EmployeeID = nil
	open.Status = models.NewShiftStatus(models.ShiftStatusPosted)
	if _, err := repo.CreateShift(nil, open); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	nextWeek, _ := repo.CreateShift(nil, memShift("emp1", "2025-06-09", "09:00", "17:00"))

	count, err := repo.PublishPending(nil, "2025-06-02", "2025-06-08")
	if err != nil {
		t.Fatalf("PublishPending: %v", err)
	}
	if count != 2 {
		t.Errorf("published %d shifts, want 2", count)
	}

	for _, id := range []string{pending1.ID, pending2.ID} {
		shift, _ := repo.GetShiftByID(id)
		if shift.Status.Type != models.ShiftStatusApproved {
			t.Errorf("shift %s status = %s, want approved", id, shift.Status.Type)
		}
		if shift.Status.Label != "Approved" {
			t.Errorf("shift %s label = %q, want Approved", id, shift.Status.Label)
		}
	}

	// Posted shifts never auto-transition; out-of-range pending stays pending.
	shift, _ := repo.GetShiftByID(open.ID)
	if shift.Status.Type != models.ShiftStatusPosted {
		t.Errorf("open shift status = %s, want posted", shift.Status.Type)
	}
	shift, _ = repo.GetShiftByID(nextWeek.ID)
	if shift.Status.Type != models.ShiftStatusPending {
		t.Errorf("next week's shift status = %s, want pending", shift.Status.Type)
	}

	// A second publish of the same window has nothing left to transition.
	count, err = repo.PublishPending(nil, "2025-06-02", "2025-06-08")
	if err != nil {
		t.Fatalf("PublishPending: %v", err)
	}
	if count != 0 {
		t.Errorf("second publish transitioned %d shifts, want 0", count)
	}
}

func TestMemoryStoreClonesRecords(t *testing.T) {
	repo := NewMemoryShiftRepository()
	created, _ := repo.CreateShift(nil, memShift("emp1", "2025-06-02", "09:00", "17:00"))

	read, _ := repo.GetShiftByID(created.ID)
	read.Position = "Manager"
	*read.EmployeeID = "emp2"

	again, _ := repo.GetShiftByID(created.ID)
	if again.Position != "Cashier" || *again.EmployeeID != "emp1" {
		t.Error("mutating a read result leaked into the store")
	}
}
