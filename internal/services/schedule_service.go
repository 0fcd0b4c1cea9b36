package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shiftly_backend/internal/models"
	"shiftly_backend/internal/repositories"
	"shiftly_backend/internal/schedule"

	"shiftly_backend/pkg/utils"
)

// --- Custom Service Errors for Schedule ---
var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrShiftValidation         = errors.New("shift validation error")
	ErrInvalidStatusTransition = errors.New("invalid shift status transition")
)

// --- Shift DTOs ---

type CreateShiftRequest struct {
	EmployeeID *string `json:"employee_id"`
	Day        string  `json:"day" binding:"required"`
	StartTime  string  `json:"start_time" binding:"required"`
	EndTime    string  `json:"end_time" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	Note       *string `json:"note"`
	// ApplyDays optionally fans the new shift out to further days of the
	// week, mirroring the "Apply To" day toggles of the shift dialog.
	ApplyDays []string `json:"apply_days"`
}

type UpdateShiftRequest struct {
	EmployeeID *string               `json:"employee_id"`
	Day        *string               `json:"day"`
	StartTime  *string               `json:"start_time"`
	EndTime    *string               `json:"end_time"`
	Position   *string               `json:"position"`
	Note       *string               `json:"note"`
	Covering   *models.ShiftCovering `json:"covering"`
}

type CopyShiftRequest struct {
	Mode schedule.ExpandMode `json:"mode" binding:"required"`
	Days []string            `json:"days"`
}

type CopyWeekRequest struct {
	// Any day within the source/target weeks may be given; both are
	// normalized to their Monday.
	SourceWeekStart string `json:"source_week_start" binding:"required"`
	TargetWeekStart string `json:"target_week_start" binding:"required"`
}

// WeekSchedule is the week view: conflict-annotated shifts plus the
// employee x day grid projection the schedule page renders.
type WeekSchedule struct {
	WeekStart string              `json:"week_start"`
	Days      []string            `json:"days"`
	Members   []models.TeamMember `json:"members"`
	Shifts    []models.Shift      `json:"shifts"`
	// Grid maps employee id -> day -> shifts in that cell. Absent keys are
	// empty cells, which the UI renders as an "add shift" affordance.
	Grid map[string]map[string][]models.Shift `json:"grid"`
	// ScheduledHours maps employee id to total scheduled time for the week,
	// in the same display format as a shift duration.
	ScheduledHours map[string]string `json:"scheduled_hours"`
	// PendingCount is the number of shifts a publish of this week would
	// transition; the header shows it as a badge on the publish button.
	PendingCount int `json:"pending_count"`
}

// --- ScheduleService Interface ---
type ScheduleService interface {
	CreateShift(req CreateShiftRequest) ([]models.Shift, error)
	GetShiftByID(shiftID string) (*models.Shift, error)
	UpdateShift(shiftID string, req UpdateShiftRequest) (*models.Shift, error)
	UpdateShiftStatus(shiftID string, status models.ShiftStatusType) (*models.Shift, error)
	DeleteShift(shiftID string) error
	CopyShift(shiftID string, req CopyShiftRequest) ([]models.Shift, error)
	GetWeekSchedule(weekStart string) (*WeekSchedule, error)
	// PublishSchedule transitions pending shifts to approved and returns the
	// count transitioned. An empty weekStart publishes all pending shifts.
	PublishSchedule(weekStart string) (int, error)
	CopyWeek(req CopyWeekRequest) (int, error)
}

// --- scheduleService Implementation ---
type scheduleService struct {
	shiftRepo    repositories.ShiftRepository
	teamRepo     repositories.TeamRepository
	activityRepo repositories.ActivityRepository
	mailer       Mailer
	db           *sql.DB
}

// NewScheduleService creates a new instance of ScheduleService. The team and
// activity repositories and the mailer are optional; without them the week
// view carries no member axis, no activity entries are recorded and no
// publish notices are sent.
func NewScheduleService(sr repositories.ShiftRepository, tr repositories.TeamRepository, ar repositories.ActivityRepository, mailer Mailer, db *sql.DB) ScheduleService {
	return &scheduleService{
		shiftRepo:    sr,
		teamRepo:     tr,
		activityRepo: ar,
		mailer:       mailer,
		db:           db,
	}
}

// recordActivity writes a feed entry; feed failures are logged, never
// propagated into the schedule operation that triggered them.
func (s *scheduleService) recordActivity(activityType models.ActivityType, message string) {
	if s.activityRepo == nil {
		return
	}
	_, err := s.activityRepo.CreateActivity(s.db, &models.Activity{Type: activityType, Message: message})
	if err != nil {
		utils.LogError(err, "recordActivity: failed to record "+string(activityType))
	}
}

// validateShiftTimes checks day and clock formats and returns the computed
// display duration.
func validateShiftTimes(day, startTime, endTime string) (string, error) {
	if _, err := schedule.ParseDay(day); err != nil {
		return "", fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}
	duration, err := schedule.ComputeDuration(startTime, endTime)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}
	return duration, nil
}

func (s *scheduleService) CreateShift(req CreateShiftRequest) ([]models.Shift, error) {
	duration, err := validateShiftTimes(req.Day, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	shift := models.Shift{
		EmployeeID: req.EmployeeID,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Position:   req.Position,
		Duration:   duration,
		Note:       req.Note,
	}
	// Shifts without an assignee start as open/posted; assigned shifts start
	// pending and are published later.
	if shift.Assigned() {
		shift.Status = models.NewShiftStatus(models.ShiftStatusPending)
	} else {
		shift.Status = models.NewShiftStatus(models.ShiftStatusPosted)
	}

	drafts, err := schedule.Expand(shift, schedule.ExpandSingleDay, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}
	if len(req.ApplyDays) > 0 {
		extra, err := schedule.Expand(shift, schedule.ExpandSelectedDays, req.ApplyDays)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShiftValidation, err)
		}
		drafts = append(drafts, extra...)
	}

	created := make([]models.Shift, 0, len(drafts))
	for i := range drafts {
		drafts[i].Duration = duration
		drafts[i].Status = shift.Status
		stored, err := s.shiftRepo.CreateShift(s.db, &drafts[i])
		if err != nil {
			return nil, err
		}
		created = append(created, *stored)
	}

	s.recordActivity(models.ActivityShiftCreated,
		fmt.Sprintf("Shift created for %s (%s-%s, %s)", req.Day, req.StartTime, req.EndTime, req.Position))
	return created, nil
}

func (s *scheduleService) GetShiftByID(shiftID string) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

func (s *scheduleService) UpdateShift(shiftID string, req UpdateShiftRequest) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	if req.EmployeeID != nil {
		if *req.EmployeeID == "" {
			shift.EmployeeID = nil
		} else {
			shift.EmployeeID = req.EmployeeID
		}
	}
	if req.Day != nil {
		shift.Day = *req.Day
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.Position != nil {
		shift.Position = *req.Position
	}
	if req.Note != nil {
		shift.Note = req.Note
	}
	if req.Covering != nil {
		shift.Covering = req.Covering
	}

	// Duration is derived state: recompute from the merged times rather than
	// trusting the stored value.
	duration, err := validateShiftTimes(shift.Day, shift.StartTime, shift.EndTime)
	if err != nil {
		return nil, err
	}
	shift.Duration = duration

	updated, err := s.shiftRepo.UpdateShift(s.db, shift)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	s.recordActivity(models.ActivityShiftUpdated, fmt.Sprintf("Shift on %s updated", updated.Day))
	return updated, nil
}

// shiftStatusTransitions lists the explicit moderation moves. The
// pending -> approved transition is reserved for publish and deliberately
// absent here.
var shiftStatusTransitions = map[models.ShiftStatusType][]models.ShiftStatusType{
	models.ShiftStatusPending:  {models.ShiftStatusDenied, models.ShiftStatusCalledOff},
	models.ShiftStatusApproved: {models.ShiftStatusCalledOff},
	models.ShiftStatusPosted:   {models.ShiftStatusPending},
}

func (s *scheduleService) UpdateShiftStatus(shiftID string, status models.ShiftStatusType) (*models.Shift, error) {
	if _, ok := models.ShiftStatusLabels[status]; !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrShiftValidation, status)
	}

	shift, err := s.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	allowed := false
	for _, next := range shiftStatusTransitions[shift.Status.Type] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, shift.Status.Type, status)
	}

	shift.Status = models.NewShiftStatus(status)
	updated, err := s.shiftRepo.UpdateShift(s.db, shift)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *scheduleService) DeleteShift(shiftID string) error {
	err := s.shiftRepo.DeleteShift(s.db, shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShiftNotFound
		}
		return err
	}
	s.recordActivity(models.ActivityShiftDeleted, "Shift deleted")
	return nil
}

func (s *scheduleService) CopyShift(shiftID string, req CopyShiftRequest) ([]models.Shift, error) {
	template, err := s.shiftRepo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	drafts, err := schedule.Expand(*template, req.Mode, req.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}

	created := make([]models.Shift, 0, len(drafts))
	for i := range drafts {
		// Copies re-enter the approval flow regardless of the template's state.
		drafts[i].Status = models.NewShiftStatus(models.ShiftStatusPending)
		drafts[i].Duration = template.Duration
		stored, err := s.shiftRepo.CreateShift(s.db, &drafts[i])
		if err != nil {
			return nil, err
		}
		created = append(created, *stored)
	}

	s.recordActivity(models.ActivityShiftCopied,
		fmt.Sprintf("Shift on %s copied to %d day(s)", template.Day, len(created)))
	return created, nil
}

func (s *scheduleService) GetWeekSchedule(weekStart string) (*WeekSchedule, error) {
	days, err := schedule.WeekOf(weekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}

	shifts, err := s.shiftRepo.GetShiftsByDayRange(days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	shifts = schedule.AnnotateConflicts(shifts)

	var members []models.TeamMember
	if s.teamRepo != nil {
		members, err = s.teamRepo.GetTeamMembers(nil)
		if err != nil {
			return nil, err
		}
	}

	grid := make(map[string]map[string][]models.Shift)
	for cell, cellShifts := range schedule.Project(shifts, members, days) {
		if grid[cell.EmployeeID] == nil {
			grid[cell.EmployeeID] = make(map[string][]models.Shift)
		}
		grid[cell.EmployeeID][cell.Day] = cellShifts
	}

	scheduledHours := make(map[string]string)
	for employeeID, minutes := range schedule.ScheduledMinutes(shifts) {
		scheduledHours[employeeID] = schedule.FormatDuration(minutes)
	}

	pendingCount := 0
	for i := range shifts {
		if shifts[i].Status.Type == models.ShiftStatusPending {
			pendingCount++
		}
	}

	return &WeekSchedule{
		WeekStart:      days[0],
		Days:           days,
		Members:        members,
		Shifts:         shifts,
		Grid:           grid,
		ScheduledHours: scheduledHours,
		PendingCount:   pendingCount,
	}, nil
}

func (s *scheduleService) PublishSchedule(weekStart string) (int, error) {
	fromDay, toDay := "", ""
	if weekStart != "" {
		days, err := schedule.WeekOf(weekStart)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrShiftValidation, err)
		}
		fromDay, toDay = days[0], days[len(days)-1]
	}

	count, err := s.shiftRepo.PublishPending(s.db, fromDay, toDay)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.recordActivity(models.ActivitySchedulePublished,
			fmt.Sprintf("Schedule published: %d shift(s) approved", count))
		s.notifyPublished(fromDay, count)
	}
	return count, nil
}

// notifyPublished emails active team members that a schedule went out.
// Delivery failures are logged and dropped, like activity recording.
func (s *scheduleService) notifyPublished(weekStart string, count int) {
	if s.mailer == nil || s.teamRepo == nil {
		return
	}
	members, err := s.teamRepo.GetTeamMembers(nil)
	if err != nil {
		utils.LogError(err, "notifyPublished: listing team members")
		return
	}
	for i := range members {
		member := &members[i]
		if member.Status != models.TeamMemberActive || member.Email == nil || *member.Email == "" {
			continue
		}
		if err := s.mailer.SendPublishNotice(*member.Email, weekStart, count); err != nil {
			utils.LogError(err, "notifyPublished: sending notice to "+*member.Email)
		}
	}
}

func (s *scheduleService) CopyWeek(req CopyWeekRequest) (int, error) {
	sourceStart, err := schedule.StartOfWeek(req.SourceWeekStart)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}
	targetStart, err := schedule.StartOfWeek(req.TargetWeekStart)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}
	if sourceStart == targetStart {
		return 0, fmt.Errorf("%w: source and target week are the same", ErrShiftValidation)
	}

	sourceEnd, err := schedule.AddDays(sourceStart, schedule.DaysPerWeek-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShiftValidation, err)
	}
	sourceShifts, err := s.shiftRepo.GetShiftsByDayRange(sourceStart, sourceEnd)
	if err != nil {
		return 0, err
	}

	sourceDay, _ := schedule.ParseDay(sourceStart)
	targetDay, _ := schedule.ParseDay(targetStart)
	offsetDays := int(targetDay.Sub(sourceDay).Hours() / 24)

	count := 0
	for i := range sourceShifts {
		template := sourceShifts[i]
		day, err := schedule.AddDays(template.Day, offsetDays)
		if err != nil {
			return count, fmt.Errorf("%w: %v", ErrShiftValidation, err)
		}
		clone := models.Shift{
			EmployeeID: template.EmployeeID,
			Day:        day,
			StartTime:  template.StartTime,
			EndTime:    template.EndTime,
			Position:   template.Position,
			Duration:   template.Duration,
			Note:       template.Note,
			Status:     models.NewShiftStatus(models.ShiftStatusPending),
		}
		if _, err := s.shiftRepo.CreateShift(s.db, &clone); err != nil {
			return count, err
		}
		count++
	}

	if count > 0 {
		s.recordActivity(models.ActivityScheduleCopied,
			fmt.Sprintf("Week of %s copied to week of %s (%d shifts)", sourceStart, targetStart, count))
	}
	return count, nil
}
