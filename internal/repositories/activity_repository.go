package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"shiftly_backend/internal/models"
)

// ActivityRepository defines the interface for activity feed database operations.
type ActivityRepository interface {
	CreateActivity(executor SQLExecutor, activity *models.Activity) (*models.Activity, error)
	GetRecentActivities(limit int) ([]models.Activity, error)
}

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new instance of ActivityRepository.
func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateActivity(executor SQLExecutor, activity *models.Activity) (*models.Activity, error) {
	activity.CreatedAt = time.Now()
	query := `INSERT INTO activities (type, message, actor, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := executor.QueryRow(query,
		string(activity.Type), activity.Message, activity.Actor, activity.CreatedAt,
	).Scan(&activity.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: creating activity: %v", ErrDatabaseError, err)
	}
	return activity, nil
}

func (r *activityRepository) GetRecentActivities(limit int) ([]models.Activity, error) {
	activities := []models.Activity{}
	query := `SELECT id, type, message, actor, created_at FROM activities ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying activities: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var activity models.Activity
		var activityType string
		var actor sql.NullString
		if err := rows.Scan(&activity.ID, &activityType, &activity.Message, &actor, &activity.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning activity: %v", ErrDatabaseError, err)
		}
		activity.Type = models.ActivityType(activityType)
		if actor.Valid {
			activity.Actor = &actor.String
		}
		activities = append(activities, activity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating activity rows: %v", ErrDatabaseError, err)
	}
	return activities, nil
}
