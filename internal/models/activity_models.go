package models

import "time"

// ActivityType enumerates the events recorded in the activity feed.
type ActivityType string

const (
	ActivityShiftCreated      ActivityType = "shift_created"
	ActivityShiftUpdated      ActivityType = "shift_updated"
	ActivityShiftDeleted      ActivityType = "shift_deleted"
	ActivityShiftCopied       ActivityType = "shift_copied"
	ActivitySchedulePublished ActivityType = "schedule_published"
	ActivityScheduleCopied    ActivityType = "schedule_copied"
	ActivityMemberInvited     ActivityType = "member_invited"
	ActivityMemberAdded       ActivityType = "member_added"
)

// Activity is a single entry in the recent-activity feed shown on the dashboard.
type Activity struct {
	ID        int64        `json:"id" db:"id"`
	Type      ActivityType `json:"type" db:"type"`
	Message   string       `json:"message" db:"message"`
	Actor     *string      `json:"actor,omitempty" db:"actor"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
