// Command seed loads a deterministic set of demo team members and a week of
// shifts into the database. Running it twice is safe: rows keep fixed ids, so
// duplicates are reported and skipped.
package main

import (
	"errors"
	"log"
	"time"

	"shiftly_backend/internal/database"
	"shiftly_backend/internal/models"
	"shiftly_backend/internal/repositories"
	"shiftly_backend/internal/schedule"
	"shiftly_backend/pkg/utils"

	"github.com/joho/godotenv"
)

type seedMember struct {
	id       string
	name     string
	email    string
	position string
}

type seedShift struct {
	id         string
	employeeID string // empty means an open shift
	dayOffset  int    // 0 = Monday of the seeded week
	start      string
	end        string
	position   string
	status     models.ShiftStatusType
	note       string
}

var seedMembers = []seedMember{
	{"emp-sarah", "Sarah Johnson", "sarah.johnson@shiftly.local", "Manager"},
	{"emp-michael", "Michael Chen", "michael.chen@shiftly.local", "Associate"},
	{"emp-emma", "Emma Garcia", "emma.garcia@shiftly.local", "Supervisor"},
	{"emp-james", "James Wilson", "james.wilson@shiftly.local", "Associate"},
	{"emp-olivia", "Olivia Martinez", "olivia.martinez@shiftly.local", "Assistant Manager"},
}

// The week covers the common shift patterns: morning, afternoon, evening and
// an overnight shift, one open shift, and a deliberate Wednesday overlap for
// Michael so conflict flagging has something to show.
var seedShifts = []seedShift{
	{"shift-sarah-mon", "emp-sarah", 0, "08:00", "16:00", "Manager", models.ShiftStatusApproved, ""},
	{"shift-sarah-wed", "emp-sarah", 2, "08:00", "16:00", "Manager", models.ShiftStatusApproved, ""},
	{"shift-sarah-fri", "emp-sarah", 4, "12:00", "20:00", "Manager", models.ShiftStatusPending, ""},
	{"shift-michael-tue", "emp-michael", 1, "12:00", "20:00", "Associate", models.ShiftStatusPending, ""},
	{"shift-michael-wed-a", "emp-michael", 2, "08:00", "16:00", "Associate", models.ShiftStatusPending, ""},
	{"shift-michael-wed-b", "emp-michael", 2, "12:00", "20:00", "Associate", models.ShiftStatusPending, "Overlaps the morning shift"},
	{"shift-emma-mon", "emp-emma", 0, "16:00", "00:00", "Supervisor", models.ShiftStatusApproved, ""},
	{"shift-emma-thu", "emp-emma", 3, "16:00", "00:00", "Supervisor", models.ShiftStatusPending, ""},
	{"shift-james-tue", "emp-james", 1, "22:00", "06:00", "Associate", models.ShiftStatusPending, "Overnight"},
	{"shift-james-sat", "emp-james", 5, "08:00", "16:00", "Associate", models.ShiftStatusDenied, ""},
	{"shift-olivia-mon", "emp-olivia", 0, "12:00", "20:00", "Assistant Manager", models.ShiftStatusApproved, ""},
	{"shift-olivia-sun", "emp-olivia", 6, "08:00", "16:00", "Assistant Manager", models.ShiftStatusPending, ""},
	{"shift-open-sat", "", 5, "16:00", "00:00", "Associate", models.ShiftStatusPosted, "Open evening slot"},
}

func main() {
	_ = godotenv.Load()

	utils.InitLogger()

	dbCfg := database.Config{
		Host:       utils.Getenv("DB_HOST", "localhost"),
		Port:       utils.Getenv("DB_PORT", "5432"),
		User:       utils.Getenv("DB_USER", "shiftly_user"),
		Password:   utils.Getenv("DB_PASSWORD", "shiftly_password"),
		Name:       utils.Getenv("DB_NAME", "shiftly_db"),
		SSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
		SchemaPath: utils.Getenv("DB_SCHEMA_PATH", "db/schema.sql"),
	}
	if err := database.InitDB(dbCfg); err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	db := database.GetDB()

	weekStart := utils.Getenv("SEED_WEEK_START", time.Now().Format(schedule.DayLayout))
	days, err := schedule.WeekOf(weekStart)
	if err != nil {
		log.Fatalf("Invalid SEED_WEEK_START %q: %v", weekStart, err)
	}

	teamRepo := repositories.NewTeamRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)

	seeded, skipped := 0, 0
	for _, m := range seedMembers {
		email := m.email
		member := models.TeamMember{
			ID:       m.id,
			Name:     m.name,
			Email:    &email,
			Position: m.position,
			Status:   models.TeamMemberActive,
		}
		if _, err := teamRepo.CreateTeamMember(db, &member); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				skipped++
				continue
			}
			log.Fatalf("Failed to seed team member %s: %v", m.id, err)
		}
		seeded++
	}

	for _, s := range seedShifts {
		shift := models.Shift{
			ID:        s.id,
			Day:       days[s.dayOffset],
			StartTime: s.start,
			EndTime:   s.end,
			Position:  s.position,
			Status:    models.NewShiftStatus(s.status),
		}
		if s.employeeID != "" {
			employeeID := s.employeeID
			shift.EmployeeID = &employeeID
		}
		if s.note != "" {
			note := s.note
			shift.Note = &note
		}
		if duration, err := schedule.ComputeDuration(s.start, s.end); err == nil {
			shift.Duration = duration
		}
		if _, err := shiftRepo.CreateShift(db, &shift); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				skipped++
				continue
			}
			log.Fatalf("Failed to seed shift %s: %v", s.id, err)
		}
		seeded++
	}

	utils.LogInfo("Seed complete", map[string]interface{}{
		"week_start": days[0],
		"seeded":     seeded,
		"skipped":    skipped,
	})
}
