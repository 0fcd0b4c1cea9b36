package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shiftly_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for user account database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, password_hash, email, full_name, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	user.CreatedAt = currentTime
	user.UpdatedAt = currentTime
	user.IsActive = true

	err := executor.QueryRow(query,
		user.Username, user.PasswordHash, user.Email, user.FullName,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: username or email already taken", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user, nil
}

func scanUserRow(row scanner) (*models.User, error) {
	var user models.User
	var email, fullName sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &email, &fullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
	}

	if email.Valid {
		user.Email = &email.String
	}
	if fullName.Valid {
		user.FullName = &fullName.String
	}
	return &user, nil
}

func (r *authRepository) GetUserByID(id int64) (*models.User, error) {
	query := `SELECT id, username, password_hash, email, full_name, is_active, created_at, updated_at
	          FROM users WHERE id = $1`
	return scanUserRow(r.db.QueryRow(query, id))
}

func (r *authRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, email, full_name, is_active, created_at, updated_at
	          FROM users WHERE username = $1`
	return scanUserRow(r.db.QueryRow(query, username))
}
