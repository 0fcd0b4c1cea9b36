package services

import (
	"errors"
	"testing"

	"shiftly_backend/internal/models"
	"shiftly_backend/internal/repositories"
	"shiftly_backend/internal/schedule"
)

// stubTeamRepository serves a fixed member list; the write methods are
// unused by the schedule service.
type stubTeamRepository struct {
	members []models.TeamMember
}

func (r *stubTeamRepository) CreateTeamMember(_ repositories.SQLExecutor, m *models.TeamMember) (*models.TeamMember, error) {
	return m, nil
}
func (r *stubTeamRepository) GetTeamMemberByID(string) (*models.TeamMember, error) {
	return nil, repositories.ErrNotFound
}
func (r *stubTeamRepository) GetTeamMembers(*string) ([]models.TeamMember, error) {
	return r.members, nil
}
func (r *stubTeamRepository) UpdateTeamMember(_ repositories.SQLExecutor, m *models.TeamMember) (*models.TeamMember, error) {
	return m, nil
}
func (r *stubTeamRepository) DeleteTeamMember(repositories.SQLExecutor, string) error { return nil }
func (r *stubTeamRepository) CreateInvite(_ repositories.SQLExecutor, i *models.Invite) (*models.Invite, error) {
	return i, nil
}
func (r *stubTeamRepository) GetInvites() ([]models.Invite, error) { return nil, nil }
func (r *stubTeamRepository) UpdateInviteStatus(repositories.SQLExecutor, string, models.InviteStatus) error {
	return nil
}

func newTestScheduleService(members ...models.TeamMember) ScheduleService {
	return NewScheduleService(
		repositories.NewMemoryShiftRepository(),
		&stubTeamRepository{members: members},
		nil, // no activity feed in tests
		nil, // no mailer in tests
		nil, // memory store ignores the executor
	)
}

func emp(id string) *string { return &id }

func TestCreateShiftDefaultsAndDuration(t *testing.T) {
	svc := newTestScheduleService()

	created, err := svc.CreateShift(CreateShiftRequest{
		EmployeeID: emp("emp1"),
		Day:        "2025-06-02",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Position:   "Cashier",
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created %d shifts, want 1", len(created))
	}
	shift := created[0]
	if shift.ID == "" {
		t.Error("created shift has no id")
	}
	if shift.Status.Type != models.ShiftStatusPending {
		t.Errorf("status = %s, want pending", shift.Status.Type)
	}
	if shift.Duration != "8h" {
		t.Errorf("duration = %q, want 8h", shift.Duration)
	}
}

func TestCreateShiftUnassignedIsPosted(t *testing.T) {
	svc := newTestScheduleService()

	created, err := svc.CreateShift(CreateShiftRequest{
		Day:       "2025-06-02",
		StartTime: "09:00",
		EndTime:   "17:00",
		Position:  "Stocker",
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if created[0].Status.Type != models.ShiftStatusPosted {
		t.Errorf("open shift status = %s, want posted", created[0].Status.Type)
	}
	if created[0].Status.Label != "Open" {
		t.Errorf("open shift label = %q, want Open", created[0].Status.Label)
	}
}

func TestCreateShiftApplyDays(t *testing.T) {
	svc := newTestScheduleService()

	created, err := svc.CreateShift(CreateShiftRequest{
		EmployeeID: emp("emp1"),
		Day:        "2025-06-02",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Position:   "Cashier",
		ApplyDays:  []string{"2025-06-02", "2025-06-03", "2025-06-04"},
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	// The primary day plus the two additional days; the duplicate entry for
	// the primary day is filtered by the expander.
	if len(created) != 3 {
		t.Fatalf("created %d shifts, want 3", len(created))
	}
	days := map[string]bool{}
	for _, s := range created {
		days[s.Day] = true
		if s.Duration != "8h" {
			t.Errorf("sibling on %s has duration %q, want 8h", s.Day, s.Duration)
		}
	}
	for _, want := range []string{"2025-06-02", "2025-06-03", "2025-06-04"} {
		if !days[want] {
			t.Errorf("no shift created for %s", want)
		}
	}
}

func TestCreateShiftValidation(t *testing.T) {
	svc := newTestScheduleService()

	tests := []struct {
		name string
		req  CreateShiftRequest
	}{
		{name: "bad day", req: CreateShiftRequest{Day: "Monday", StartTime: "09:00", EndTime: "17:00", Position: "Cashier"}},
		{name: "bad start", req: CreateShiftRequest{Day: "2025-06-02", StartTime: "9am", EndTime: "17:00", Position: "Cashier"}},
		{name: "bad end", req: CreateShiftRequest{Day: "2025-06-02", StartTime: "09:00", EndTime: "", Position: "Cashier"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateShift(tt.req); !errors.Is(err, ErrShiftValidation) {
				t.Errorf("error = %v, want ErrShiftValidation", err)
			}
		})
	}
}

func TestUpdateShiftRecomputesDuration(t *testing.T) {
	svc := newTestScheduleService()
	created, _ := svc.CreateShift(CreateShiftRequest{
		EmployeeID: emp("emp1"), Day: "2025-06-02", StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
	})

	newEnd := "13:30"
	updated, err := svc.UpdateShift(created[0].ID, UpdateShiftRequest{EndTime: &newEnd})
	if err != nil {
		t.Fatalf("UpdateShift: %v", err)
	}
	if updated.Duration != "4h 30m" {
		t.Errorf("duration after update = %q, want 4h 30m", updated.Duration)
	}
	if updated.StartTime != "09:00" {
		t.Errorf("unrelated field changed: start = %q", updated.StartTime)
	}
}

func TestUpdateShiftNotFound(t *testing.T) {
	svc := newTestScheduleService()
	note := "late open"
	if _, err := svc.UpdateShift("missing-id", UpdateShiftRequest{Note: &note}); !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("error = %v, want ErrShiftNotFound", err)
	}
	if err := svc.DeleteShift("missing-id"); !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("delete error = %v, want ErrShiftNotFound", err)
	}
}

func TestUpdateShiftStatusTransitions(t *testing.T) {
	svc := newTestScheduleService()
	created, _ := svc.CreateShift(CreateShiftRequest{
		EmployeeID: emp("emp1"), Day: "2025-06-02", StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
	})
	id := created[0].ID

	// Publish is the only path from pending to approved.
	if _, err := svc.UpdateShiftStatus(id, models.ShiftStatusApproved); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("pending->approved via status endpoint error = %v, want ErrInvalidStatusTransition", err)
	}

	denied, err := svc.UpdateShiftStatus(id, models.ShiftStatusDenied)
	if err != nil {
		t.Fatalf("pending->denied: %v", err)
	}
	if denied.Status.Type != models.ShiftStatusDenied {
		t.Errorf("status = %s, want denied", denied.Status.Type)
	}

	// Denied is terminal for moderation purposes.
	if _, err := svc.UpdateShiftStatus(id, models.ShiftStatusPending); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("denied->pending error = %v, want ErrInvalidStatusTransition", err)
	}

	if _, err := svc.UpdateShiftStatus(id, models.ShiftStatusType("archived")); !errors.Is(err, ErrShiftValidation) {
		t.Errorf("unknown status error = %v, want ErrShiftValidation", err)
	}
}

func TestCopyShiftWholeWeek(t *testing.T) {
	svc := newTestScheduleService()
	created, _ := svc.CreateShift(CreateShiftRequest{
		EmployeeID: emp("emp1"), Day: "2025-06-04", StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
	})
	template := created[0]

	copies, err := svc.CopyShift(template.ID, CopyShiftRequest{Mode: schedule.ExpandWholeWeek})
	if err != nil {
		t.Fatalf("CopyShift: %v", err)
	}
	if len(copies) != 6 {
		t.Fatalf("whole-week copy produced %d shifts, want 6", len(copies))
	}
	ids := map[string]bool{template.ID: true}
	for _, c := range copies {
		if c.Day == template.Day {
			t.Errorf("copy landed on the template's day %s", c.Day)
		}
		if ids[c.ID] {
			t.Errorf("duplicate id %s among copies", c.ID)
		}
		ids[c.ID] = true
		if c.Status.Type != models.ShiftStatusPending {
			t.Errorf("copy status = %s, want pending", c.Status.Type)
		}
	}
}

func TestCopyShiftNotFound(t *testing.T) {
	svc := newTestScheduleService()
	if _, err := svc.CopyShift("missing-id", CopyShiftRequest{Mode: schedule.ExpandWholeWeek}); !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("error = %v, want ErrShiftNotFound", err)
	}
}

func TestPublishSchedule(t *testing.T) {
	svc := newTestScheduleService()
	for _, day := range []string{"2025-06-02", "2025-06-03", "2025-06-04"} {
		if _, err := svc.CreateShift(CreateShiftRequest{
			EmployeeID: emp("emp1"), Day: day, StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
		}); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}
	// An open shift must survive publish untouched.
	if _, err := svc.CreateShift(CreateShiftRequest{
		Day: "2025-06-05", StartTime: "09:00", EndTime: "17:00", Position: "Stocker",
	}); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	count, err := svc.PublishSchedule("2025-06-02")
	if err != nil {
		t.Fatalf("PublishSchedule: %v", err)
	}
	if count != 3 {
		t.Errorf("published %d shifts, want 3", count)
	}

	week, err := svc.GetWeekSchedule("2025-06-02")
	if err != nil {
		t.Fatalf("GetWeekSchedule: %v", err)
	}
	if week.PendingCount != 0 {
		t.Errorf("pending count after publish = %d, want 0", week.PendingCount)
	}
	for _, s := range week.Shifts {
		if s.Status.Type == models.ShiftStatusPending {
			t.Errorf("shift %s still pending after publish", s.ID)
		}
	}

	// Re-publishing finds nothing left.
	count, _ = svc.PublishSchedule("2025-06-02")
	if count != 0 {
		t.Errorf("second publish transitioned %d shifts, want 0", count)
	}
}

func TestGetWeekScheduleGridAndConflicts(t *testing.T) {
	members := []models.TeamMember{
		{ID: "emp1", Name: "John Doe", Position: "Cashier"},
		{ID: "emp2", Name: "Jane Smith", Position: "Manager"},
	}
	svc := newTestScheduleService(members...)

	mk := func(employee, day, start, end string) models.Shift {
		created, err := svc.CreateShift(CreateShiftRequest{
			EmployeeID: emp(employee), Day: day, StartTime: start, EndTime: end, Position: "Cashier",
		})
		if err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
		return created[0]
	}
	a := mk("emp1", "2025-06-02", "09:00", "17:00")
	b := mk("emp1", "2025-06-02", "12:00", "20:00")
	c := mk("emp1", "2025-06-03", "09:00", "17:00")

	week, err := svc.GetWeekSchedule("2025-06-02")
	if err != nil {
		t.Fatalf("GetWeekSchedule: %v", err)
	}

	if week.WeekStart != "2025-06-02" || len(week.Days) != 7 {
		t.Errorf("week start %s with %d days", week.WeekStart, len(week.Days))
	}

	flags := map[string]bool{}
	for _, s := range week.Shifts {
		flags[s.ID] = s.Conflict
	}
	if !flags[a.ID] || !flags[b.ID] {
		t.Error("overlapping Monday shifts must both be flagged")
	}
	if flags[c.ID] {
		t.Error("Tuesday shift must not be flagged")
	}

	cell := week.Grid["emp1"]["2025-06-02"]
	if len(cell) != 2 || cell[0].ID != a.ID || cell[1].ID != b.ID {
		t.Errorf("emp1 Monday cell wrong: %v", cell)
	}
	if _, ok := week.Grid["emp2"]; ok {
		t.Error("employee with no shifts should have no grid entry")
	}
	if week.ScheduledHours["emp1"] != "24h" {
		t.Errorf("emp1 scheduled hours = %q, want 24h", week.ScheduledHours["emp1"])
	}
}

func TestCopyWeek(t *testing.T) {
	svc := newTestScheduleService()
	for _, day := range []string{"2025-06-02", "2025-06-04", "2025-06-07"} {
		if _, err := svc.CreateShift(CreateShiftRequest{
			EmployeeID: emp("emp1"), Day: day, StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
		}); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}
	if _, err := svc.PublishSchedule("2025-06-02"); err != nil {
		t.Fatalf("PublishSchedule: %v", err)
	}

	count, err := svc.CopyWeek(CopyWeekRequest{SourceWeekStart: "2025-06-02", TargetWeekStart: "2025-06-09"})
	if err != nil {
		t.Fatalf("CopyWeek: %v", err)
	}
	if count != 3 {
		t.Errorf("copied %d shifts, want 3", count)
	}

	target, err := svc.GetWeekSchedule("2025-06-09")
	if err != nil {
		t.Fatalf("GetWeekSchedule: %v", err)
	}
	if len(target.Shifts) != 3 {
		t.Fatalf("target week has %d shifts, want 3", len(target.Shifts))
	}
	wantDays := map[string]bool{"2025-06-09": true, "2025-06-11": true, "2025-06-14": true}
	for _, s := range target.Shifts {
		if !wantDays[s.Day] {
			t.Errorf("copied shift landed on %s", s.Day)
		}
		// Copies await review: pending even though the source was published.
		if s.Status.Type != models.ShiftStatusPending {
			t.Errorf("copied shift status = %s, want pending", s.Status.Type)
		}
	}

	if _, err := svc.CopyWeek(CopyWeekRequest{SourceWeekStart: "2025-06-02", TargetWeekStart: "2025-06-05"}); !errors.Is(err, ErrShiftValidation) {
		t.Errorf("same-week copy error = %v, want ErrShiftValidation", err)
	}
}
