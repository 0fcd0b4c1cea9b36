package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftly_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.Error
)

// TeamRepository defines the interface for team member and invite
// related database operations.
type TeamRepository interface {
	CreateTeamMember(executor SQLExecutor, member *models.TeamMember) (*models.TeamMember, error)
	GetTeamMemberByID(id string) (*models.TeamMember, error)
	GetTeamMembers(searchTerm *string) ([]models.TeamMember, error)
	UpdateTeamMember(executor SQLExecutor, member *models.TeamMember) (*models.TeamMember, error)
	DeleteTeamMember(executor SQLExecutor, id string) error

	CreateInvite(executor SQLExecutor, invite *models.Invite) (*models.Invite, error)
	GetInvites() ([]models.Invite, error)
	UpdateInviteStatus(executor SQLExecutor, id string, status models.InviteStatus) error
}

type teamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *sql.DB) TeamRepository {
	return &teamRepository{db: db}
}

// --- TeamMember Methods ---

const teamMemberColumns = `id, name, email, phone, position, avatar, status, hours, created_at, updated_at`

func (r *teamRepository) CreateTeamMember(executor SQLExecutor, member *models.TeamMember) (*models.TeamMember, error) {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.Status == "" {
		member.Status = models.TeamMemberActive
	}
	currentTime := time.Now()
	member.CreatedAt = currentTime
	member.UpdatedAt = currentTime

	query := `INSERT INTO team_members (id, name, email, phone, position, avatar, status, hours, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := executor.Exec(query,
		member.ID, member.Name, member.Email, member.Phone, member.Position,
		member.Avatar, string(member.Status), member.Hours, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: team member with this email already exists", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("%w: creating team member: %v", ErrDatabaseError, err)
	}
	return member, nil
}

func scanTeamMemberRow(row scanner) (*models.TeamMember, error) {
	var member models.TeamMember
	var status string
	var email, phone, avatar sql.NullString

	err := row.Scan(
		&member.ID, &member.Name, &email, &phone, &member.Position,
		&avatar, &status, &member.Hours, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning team member: %v", ErrDatabaseError, err)
	}

	member.Status = models.TeamMemberStatus(status)
	if email.Valid {
		member.Email = &email.String
	}
	if phone.Valid {
		member.Phone = &phone.String
	}
	if avatar.Valid {
		member.Avatar = &avatar.String
	}
	return &member, nil
}

func (r *teamRepository) GetTeamMemberByID(id string) (*models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = $1`
	return scanTeamMemberRow(r.db.QueryRow(query, id))
}

func (r *teamRepository) GetTeamMembers(searchTerm *string) ([]models.TeamMember, error) {
	members := []models.TeamMember{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + teamMemberColumns + ` FROM team_members`)

	var args []interface{}
	if searchTerm != nil && *searchTerm != "" {
		queryBuilder.WriteString(` WHERE name ILIKE $1 OR position ILIKE $1 OR email ILIKE $1`)
		args = append(args, "%"+strings.TrimSpace(*searchTerm)+"%")
	}
	queryBuilder.WriteString(" ORDER BY name ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying team members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		member, err := scanTeamMemberRow(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating team member rows: %v", ErrDatabaseError, err)
	}
	return members, nil
}

func (r *teamRepository) UpdateTeamMember(executor SQLExecutor, member *models.TeamMember) (*models.TeamMember, error) {
	query := `UPDATE team_members SET
	            name = $1, email = $2, phone = $3, position = $4, avatar = $5,
	            status = $6, hours = $7, updated_at = $8
	          WHERE id = $9
	          RETURNING updated_at`
	member.UpdatedAt = time.Now()

	err := executor.QueryRow(query,
		member.Name, member.Email, member.Phone, member.Position, member.Avatar,
		string(member.Status), member.Hours, member.UpdatedAt, member.ID,
	).Scan(&member.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating team member ID %s: %v", ErrDatabaseError, member.ID, err)
	}
	return member, nil
}

func (r *teamRepository) DeleteTeamMember(executor SQLExecutor, id string) error {
	// Shifts keep a weak reference to the member; they are not deleted and
	// render as unassigned once the reference dangles.
	query := `DELETE FROM team_members WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting team member ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Invite Methods ---

func (r *teamRepository) CreateInvite(executor SQLExecutor, invite *models.Invite) (*models.Invite, error) {
	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}
	if invite.Status == "" {
		invite.Status = models.InvitePending
	}
	invite.CreatedAt = time.Now()

	query := `INSERT INTO invites (id, email, role, token, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(query,
		invite.ID, invite.Email, invite.Role, invite.Token, string(invite.Status), invite.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: an invite for %s is already pending", ErrDuplicateKey, invite.Email)
		}
		return nil, fmt.Errorf("%w: creating invite: %v", ErrDatabaseError, err)
	}
	return invite, nil
}

func (r *teamRepository) GetInvites() ([]models.Invite, error) {
	invites := []models.Invite{}
	query := `SELECT id, email, role, token, status, created_at FROM invites ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying invites: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var invite models.Invite
		var status string
		if err := rows.Scan(&invite.ID, &invite.Email, &invite.Role, &invite.Token, &status, &invite.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning invite: %v", ErrDatabaseError, err)
		}
		invite.Status = models.InviteStatus(status)
		invites = append(invites, invite)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating invite rows: %v", ErrDatabaseError, err)
	}
	return invites, nil
}

func (r *teamRepository) UpdateInviteStatus(executor SQLExecutor, id string, status models.InviteStatus) error {
	result, err := executor.Exec(`UPDATE invites SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("%w: updating invite ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
