package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftly_backend/internal/models"
	"shiftly_backend/internal/schedule"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// ShiftRepository is the shift store: an ordered collection of shift records
// keyed by id. The Postgres implementation below is the persistence boundary;
// a memory implementation with identical semantics backs tests and demo mode.
type ShiftRepository interface {
	CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error)
	GetShiftByID(id string) (*models.Shift, error)
	// GetShiftsByDayRange lists shifts with fromDay <= day <= toDay in
	// creation order. An empty fromDay or toDay leaves that bound open.
	GetShiftsByDayRange(fromDay, toDay string) ([]models.Shift, error)
	UpdateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error)
	DeleteShift(executor SQLExecutor, id string) error
	// PublishPending transitions every pending shift in the range to
	// approved and returns the number of shifts transitioned.
	PublishPending(executor SQLExecutor, fromDay, toDay string) (int, error)
}

type shiftRepository struct {
	db *sql.DB
}

// NewShiftRepository creates a Postgres-backed ShiftRepository.
func NewShiftRepository(db *sql.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `id, employee_id, day, start_time, end_time, position, duration, status, note, covering_for, covering_by, created_at, updated_at`

func (r *shiftRepository) CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	if shift.Status.Type == "" {
		shift.Status = models.NewShiftStatus(models.ShiftStatusPending)
	}
	currentTime := time.Now()
	shift.CreatedAt = currentTime
	shift.UpdatedAt = currentTime

	query := `INSERT INTO shifts (id, employee_id, day, start_time, end_time, position, duration, status, note, covering_for, covering_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	var coveringFor, coveringBy *string
	if shift.Covering != nil {
		coveringFor = &shift.Covering.For
		coveringBy = &shift.Covering.By
	}

	_, err := executor.Exec(query,
		shift.ID, shift.EmployeeID, shift.Day, shift.StartTime, shift.EndTime,
		shift.Position, shift.Duration, string(shift.Status.Type), shift.Note,
		coveringFor, coveringBy, shift.CreatedAt, shift.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: shift id %s already exists", ErrDuplicateKey, shift.ID)
		}
		return nil, fmt.Errorf("%w: creating shift: %v", ErrDatabaseError, err)
	}
	return shift, nil
}

// scanShiftRow scans one shifts row, normalizing the stored day to the
// YYYY-MM-DD wire form and attaching the status display label.
func scanShiftRow(row scanner) (*models.Shift, error) {
	var shift models.Shift
	var day time.Time
	var statusType string
	var employeeID, note, coveringFor, coveringBy sql.NullString

	err := row.Scan(
		&shift.ID, &employeeID, &day, &shift.StartTime, &shift.EndTime,
		&shift.Position, &shift.Duration, &statusType, &note,
		&coveringFor, &coveringBy, &shift.CreatedAt, &shift.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning shift: %v", ErrDatabaseError, err)
	}

	shift.Day = day.Format(schedule.DayLayout)
	shift.Status = models.NewShiftStatus(models.ShiftStatusType(statusType))
	if employeeID.Valid {
		shift.EmployeeID = &employeeID.String
	}
	if note.Valid {
		shift.Note = &note.String
	}
	if coveringFor.Valid && coveringBy.Valid {
		shift.Covering = &models.ShiftCovering{For: coveringFor.String, By: coveringBy.String}
	}
	return &shift, nil
}

func (r *shiftRepository) GetShiftByID(id string) (*models.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	return scanShiftRow(r.db.QueryRow(query, id))
}

func (r *shiftRepository) GetShiftsByDayRange(fromDay, toDay string) ([]models.Shift, error) {
	shifts := []models.Shift{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + shiftColumns + ` FROM shifts`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if fromDay != "" {
		conditions = append(conditions, fmt.Sprintf("day >= $%d", argCount))
		args = append(args, fromDay)
		argCount++
	}
	if toDay != "" {
		conditions = append(conditions, fmt.Sprintf("day <= $%d", argCount))
		args = append(args, toDay)
		argCount++
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	// Creation order keeps cell contents stable across reads.
	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying shifts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		shift, err := scanShiftRow(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating shift rows: %v", ErrDatabaseError, err)
	}
	return shifts, nil
}

func (r *shiftRepository) UpdateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	query := `UPDATE shifts SET
	            employee_id = $1, day = $2, start_time = $3, end_time = $4,
	            position = $5, duration = $6, status = $7, note = $8,
	            covering_for = $9, covering_by = $10, updated_at = $11
	          WHERE id = $12
	          RETURNING updated_at`
	shift.UpdatedAt = time.Now()

	var coveringFor, coveringBy *string
	if shift.Covering != nil {
		coveringFor = &shift.Covering.For
		coveringBy = &shift.Covering.By
	}

	err := executor.QueryRow(query,
		shift.EmployeeID, shift.Day, shift.StartTime, shift.EndTime,
		shift.Position, shift.Duration, string(shift.Status.Type), shift.Note,
		coveringFor, coveringBy, shift.UpdatedAt, shift.ID,
	).Scan(&shift.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating shift ID %s: %v", ErrDatabaseError, shift.ID, err)
	}
	return shift, nil
}

func (r *shiftRepository) DeleteShift(executor SQLExecutor, id string) error {
	query := `DELETE FROM shifts WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting shift ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *shiftRepository) PublishPending(executor SQLExecutor, fromDay, toDay string) (int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`UPDATE shifts SET status = $1, updated_at = $2 WHERE status = $3`)

	args := []interface{}{string(models.ShiftStatusApproved), time.Now(), string(models.ShiftStatusPending)}
	argCount := 4

	if fromDay != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND day >= $%d", argCount))
		args = append(args, fromDay)
		argCount++
	}
	if toDay != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND day <= $%d", argCount))
		args = append(args, toDay)
	}

	result, err := executor.Exec(queryBuilder.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("%w: publishing pending shifts: %v", ErrDatabaseError, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return int(rowsAffected), nil
}
