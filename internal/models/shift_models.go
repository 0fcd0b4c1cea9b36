package models

import "time"

// ShiftStatusType enumerates the lifecycle states of a shift.
type ShiftStatusType string

const (
	// ShiftStatusPending is the default state for a newly created or copied
	// shift. Pending shifts become approved when the schedule is published.
	ShiftStatusPending ShiftStatusType = "pending"
	// ShiftStatusApproved marks a published shift.
	ShiftStatusApproved ShiftStatusType = "approved"
	// ShiftStatusDenied marks a shift rejected during moderation.
	ShiftStatusDenied ShiftStatusType = "denied"
	// ShiftStatusPosted marks an open/unassigned shift available for claim.
	// It does not auto-transition.
	ShiftStatusPosted ShiftStatusType = "posted"
	// ShiftStatusCalledOff is terminal, reached only through explicit cancellation.
	ShiftStatusCalledOff ShiftStatusType = "called-off"
)

// ShiftStatusLabels maps each status type to its display label.
var ShiftStatusLabels = map[ShiftStatusType]string{
	ShiftStatusPending:   "Pending",
	ShiftStatusApproved:  "Approved",
	ShiftStatusDenied:    "Denied",
	ShiftStatusPosted:    "Open",
	ShiftStatusCalledOff: "Called Off",
}

// ShiftStatus pairs a status type with its display label.
type ShiftStatus struct {
	Type  ShiftStatusType `json:"type" db:"status"`
	Label string          `json:"label"`
}

// NewShiftStatus builds a ShiftStatus with the canonical label for the type.
func NewShiftStatus(t ShiftStatusType) ShiftStatus {
	return ShiftStatus{Type: t, Label: ShiftStatusLabels[t]}
}

// ShiftCovering records a shift swap: who the shift was originally for and
// who is covering it.
type ShiftCovering struct {
	For string `json:"for" db:"covering_for"`
	By  string `json:"by" db:"covering_by"`
}

// Shift represents a scheduled work assignment for one employee on one day.
type Shift struct {
	ID string `json:"id" db:"id"`
	// EmployeeID is a weak reference to a TeamMember. Nil means an open
	// (unassigned) shift; a dangling reference is tolerated and rendered
	// as "unassigned" by callers.
	EmployeeID *string `json:"employee_id,omitempty" db:"employee_id"`
	// Day is an absolute calendar date in YYYY-MM-DD form. Weekday labels
	// alone cannot distinguish one week's Monday from the next, which would
	// break week-to-week copying.
	Day       string `json:"day" db:"day"`
	StartTime string `json:"start_time" db:"start_time"` // HH:MM, 24-hour
	EndTime   string `json:"end_time" db:"end_time"`     // HH:MM; may wrap past midnight
	Position  string `json:"position" db:"position"`
	// Duration is derived from StartTime/EndTime and recomputed on every
	// write; a stored value is never trusted over the computed one.
	Duration string         `json:"duration" db:"duration"`
	Status   ShiftStatus    `json:"status"`
	Note     *string        `json:"note,omitempty" db:"note"`
	Covering *ShiftCovering `json:"covering,omitempty"`
	// Conflict is computed per read against the other shifts of the same
	// employee and day; it is not persisted.
	Conflict  bool      `json:"conflict"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Assigned reports whether the shift has a non-empty employee reference.
func (s *Shift) Assigned() bool {
	return s.EmployeeID != nil && *s.EmployeeID != ""
}
