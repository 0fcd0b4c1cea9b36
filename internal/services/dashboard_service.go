package services

import (
	"shiftly_backend/internal/models"
	"shiftly_backend/internal/repositories"
	"shiftly_backend/internal/schedule"
)

// DashboardStats aggregates what the overview page shows: shift counts by
// status and day, labor totals and team membership counts for one week.
type DashboardStats struct {
	WeekStart string `json:"week_start"`
	Shifts    struct {
		Total     int            `json:"total"`
		ByStatus  map[string]int `json:"by_status"`
		ByDay     map[string]int `json:"by_day"`
		Open      int            `json:"open"`
		Conflicts int            `json:"conflicts"`
		Pending   int            `json:"pending"`
	} `json:"shifts"`
	Labor struct {
		ScheduledMinutes int    `json:"scheduled_minutes"`
		ScheduledHours   string `json:"scheduled_hours"`
	} `json:"labor"`
	Team struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
		Pending  int `json:"pending"`
	} `json:"team"`
	Invites struct {
		Pending int `json:"pending"`
	} `json:"invites"`
}

// --- DashboardService Interface ---
type DashboardService interface {
	GetStats(weekStart string) (*DashboardStats, error)
	GetRecentActivities(limit int) ([]models.Activity, error)
}

type dashboardService struct {
	shiftRepo    repositories.ShiftRepository
	teamRepo     repositories.TeamRepository
	activityRepo repositories.ActivityRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(sr repositories.ShiftRepository, tr repositories.TeamRepository, ar repositories.ActivityRepository) DashboardService {
	return &dashboardService{shiftRepo: sr, teamRepo: tr, activityRepo: ar}
}

// GetStats recomputes the dashboard for the week containing weekStart. The
// schedule holds tens of shifts, so a full scan per request beats keeping
// incremental counters in sync.
func (s *dashboardService) GetStats(weekStart string) (*DashboardStats, error) {
	days, err := schedule.WeekOf(weekStart)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.GetShiftsByDayRange(days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	shifts = schedule.AnnotateConflicts(shifts)

	stats := &DashboardStats{WeekStart: days[0]}
	stats.Shifts.ByStatus = make(map[string]int)
	stats.Shifts.ByDay = make(map[string]int)

	totalMinutes := 0
	for i := range shifts {
		shift := &shifts[i]
		stats.Shifts.Total++
		stats.Shifts.ByStatus[string(shift.Status.Type)]++
		if label, err := schedule.WeekdayLabel(shift.Day); err == nil {
			stats.Shifts.ByDay[label]++
		}
		if !shift.Assigned() || shift.Status.Type == models.ShiftStatusPosted {
			stats.Shifts.Open++
		}
		if shift.Conflict {
			stats.Shifts.Conflicts++
		}
		if shift.Status.Type == models.ShiftStatusPending {
			stats.Shifts.Pending++
		}
		if minutes, err := schedule.DurationMinutes(shift.StartTime, shift.EndTime); err == nil {
			totalMinutes += minutes
		}
	}
	stats.Labor.ScheduledMinutes = totalMinutes
	stats.Labor.ScheduledHours = schedule.FormatDuration(totalMinutes)

	members, err := s.teamRepo.GetTeamMembers(nil)
	if err != nil {
		return nil, err
	}
	stats.Team.Total = len(members)
	for _, member := range members {
		switch member.Status {
		case models.TeamMemberActive:
			stats.Team.Active++
		case models.TeamMemberInactive:
			stats.Team.Inactive++
		case models.TeamMemberPending:
			stats.Team.Pending++
		}
	}

	invites, err := s.teamRepo.GetInvites()
	if err != nil {
		return nil, err
	}
	for _, invite := range invites {
		if invite.Status == models.InvitePending {
			stats.Invites.Pending++
		}
	}

	return stats, nil
}

func (s *dashboardService) GetRecentActivities(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.activityRepo.GetRecentActivities(limit)
}
