package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hoopspot/hoopspot/internal/pkg/database"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// ErrUserNotFound is returned when a user lookup matches no rows
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user account persistence in PostgreSQL
type UserRepository struct {
	db *database.PostgresClient
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.PostgresClient) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user account
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users (id, username, email, password, profile_pic, avatar_url,
	                             is_public, current_court_id, created_at, updated_at)
	          VALUES (:id, :username, :email, :password, :profile_pic, :avatar_url,
	                  :is_public, :current_court_id, :created_at, :updated_at)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT id, username, email, password, profile_pic, avatar_url,
	                 is_public, current_court_id, created_at, updated_at
	          FROM users
	          WHERE id = $1`

	var user models.User
	err := r.db.GetDB().GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, username, email, password, profile_pic, avatar_url,
	                 is_public, current_court_id, created_at, updated_at
	          FROM users
	          WHERE email = $1`

	var user models.User
	err := r.db.GetDB().GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpdateProfile persists profile field changes
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `UPDATE users
	          SET username = :username, profile_pic = :profile_pic,
	              avatar_url = :avatar_url, updated_at = :updated_at
	          WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetVisibility updates the user's public/private flag
func (r *UserRepository) SetVisibility(ctx context.Context, userID string, isPublic bool) error {
	query := `UPDATE users SET is_public = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.GetDB().ExecContext(ctx, query, isPublic, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set visibility: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetCurrentCourt records which court the user is checked in to
func (r *UserRepository) SetCurrentCourt(ctx context.Context, userID, courtID string) error {
	query := `UPDATE users SET current_court_id = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.GetDB().ExecContext(ctx, query, courtID, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to set current court: %w", err)
	}
	return nil
}

// ClearCurrentCourt removes the user's current court association
func (r *UserRepository) ClearCurrentCourt(ctx context.Context, userID string) error {
	query := `UPDATE users SET current_court_id = '', updated_at = $1 WHERE id = $2`
	if _, err := r.db.GetDB().ExecContext(ctx, query, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to clear current court: %w", err)
	}
	return nil
}

// GetUsersByIDs retrieves multiple users at once
func (r *UserRepository) GetUsersByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	if len(userIDs) == 0 {
		return []models.User{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, username, email, password, profile_pic, avatar_url,
	                                   is_public, current_court_id, created_at, updated_at
	                            FROM users
	                            WHERE id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build user batch query: %w", err)
	}

	users := []models.User{}
	if err := r.db.GetDB().SelectContext(ctx, &users, r.db.GetDB().Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// ListUsers returns the public listing view of every user except the caller
func (r *UserRepository) ListUsers(ctx context.Context, excludeUserID string) ([]models.UserSummary, error) {
	query := `SELECT id, username, profile_pic
	          FROM users
	          WHERE id <> $1
	          ORDER BY username`

	summaries := []models.UserSummary{}
	if err := r.db.GetDB().SelectContext(ctx, &summaries, query, excludeUserID); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return summaries, nil
}

// ListPublicUsers returns every public user except the caller
func (r *UserRepository) ListPublicUsers(ctx context.Context, excludeUserID string) ([]models.User, error) {
	query := `SELECT id, username, email, password, profile_pic, avatar_url,
	                 is_public, current_court_id, created_at, updated_at
	          FROM users
	          WHERE id <> $1 AND is_public
	          ORDER BY username`

	users := []models.User{}
	if err := r.db.GetDB().SelectContext(ctx, &users, query, excludeUserID); err != nil {
		return nil, fmt.Errorf("failed to list public users: %w", err)
	}
	return users, nil
}
