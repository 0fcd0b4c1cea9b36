package repositories

import (
	"fmt"
	"time"

	"shiftly_backend/internal/models"

	"github.com/google/uuid"
)

// memoryShiftRepository is an in-memory ShiftRepository preserving insertion
// order. It backs tests and demo mode; the SQLExecutor arguments are unused
// and may be nil.
type memoryShiftRepository struct {
	order  []string
	shifts map[string]*models.Shift
}

// NewMemoryShiftRepository creates an empty in-memory shift store.
func NewMemoryShiftRepository() ShiftRepository {
	return &memoryShiftRepository{shifts: make(map[string]*models.Shift)}
}

func cloneShift(s *models.Shift) *models.Shift {
	c := *s
	if s.EmployeeID != nil {
		employeeID := *s.EmployeeID
		c.EmployeeID = &employeeID
	}
	if s.Note != nil {
		note := *s.Note
		c.Note = &note
	}
	if s.Covering != nil {
		covering := *s.Covering
		c.Covering = &covering
	}
	return &c
}

func (r *memoryShiftRepository) CreateShift(_ SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	if shift.Status.Type == "" {
		shift.Status = models.NewShiftStatus(models.ShiftStatusPending)
	}
	if _, exists := r.shifts[shift.ID]; exists {
		return nil, fmt.Errorf("%w: shift id %s already exists", ErrDuplicateKey, shift.ID)
	}
	currentTime := time.Now()
	shift.CreatedAt = currentTime
	shift.UpdatedAt = currentTime

	r.shifts[shift.ID] = cloneShift(shift)
	r.order = append(r.order, shift.ID)
	return shift, nil
}

func (r *memoryShiftRepository) GetShiftByID(id string) (*models.Shift, error) {
	shift, ok := r.shifts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneShift(shift), nil
}

func (r *memoryShiftRepository) GetShiftsByDayRange(fromDay, toDay string) ([]models.Shift, error) {
	shifts := []models.Shift{}
	for _, id := range r.order {
		shift := r.shifts[id]
		if fromDay != "" && shift.Day < fromDay {
			continue
		}
		if toDay != "" && shift.Day > toDay {
			continue
		}
		shifts = append(shifts, *cloneShift(shift))
	}
	return shifts, nil
}

func (r *memoryShiftRepository) UpdateShift(_ SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	existing, ok := r.shifts[shift.ID]
	if !ok {
		return nil, ErrNotFound
	}
	shift.CreatedAt = existing.CreatedAt
	shift.UpdatedAt = time.Now()
	r.shifts[shift.ID] = cloneShift(shift)
	return shift, nil
}

func (r *memoryShiftRepository) DeleteShift(_ SQLExecutor, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return ErrNotFound
	}
	delete(r.shifts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryShiftRepository) PublishPending(_ SQLExecutor, fromDay, toDay string) (int, error) {
	count := 0
	for _, id := range r.order {
		shift := r.shifts[id]
		if shift.Status.Type != models.ShiftStatusPending {
			continue
		}
		if fromDay != "" && shift.Day < fromDay {
			continue
		}
		if toDay != "" && shift.Day > toDay {
			continue
		}
		shift.Status = models.NewShiftStatus(models.ShiftStatusApproved)
		shift.UpdatedAt = time.Now()
		count++
	}
	return count, nil
}
