package models

import "time"

// TeamMemberStatus enumerates membership states.
type TeamMemberStatus string

const (
	TeamMemberActive   TeamMemberStatus = "active"
	TeamMemberInactive TeamMemberStatus = "inactive"
	TeamMemberPending  TeamMemberStatus = "pending"
)

// TeamMember represents an employee who can be assigned shifts.
type TeamMember struct {
	ID       string           `json:"id" db:"id"`
	Name     string           `json:"name" db:"name"`
	Email    *string          `json:"email,omitempty" db:"email"`
	Phone    *string          `json:"phone,omitempty" db:"phone"`
	Position string           `json:"position" db:"position"`
	Avatar   *string          `json:"avatar,omitempty" db:"avatar"`
	Status   TeamMemberStatus `json:"status" db:"status"`
	// Hours is the weekly hours target recorded for the member. It is an
	// aggregate input, not derived from the schedule.
	Hours     float64   `json:"hours" db:"hours"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// InviteStatus enumerates invite states.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRevoked  InviteStatus = "revoked"
)

// Invite represents an emailed invitation to join the team.
type Invite struct {
	ID        string       `json:"id" db:"id"`
	Email     string       `json:"email" db:"email"`
	Role      string       `json:"role" db:"role"`
	Token     string       `json:"-" db:"token"`
	Status    InviteStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
