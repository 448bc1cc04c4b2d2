package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hoopspot/hoopspot/internal/pkg/database"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// ErrRequestNotFound is returned when a friend request lookup matches no rows
var ErrRequestNotFound = errors.New("friend request not found")

// NetworkRepository handles friend connection persistence in PostgreSQL
type NetworkRepository struct {
	db *database.PostgresClient
}

// NewNetworkRepository creates a new network repository
func NewNetworkRepository(db *database.PostgresClient) *NetworkRepository {
	return &NetworkRepository{db: db}
}

// CreateFriendRequest inserts a new pending friend request
func (r *NetworkRepository) CreateFriendRequest(ctx context.Context, request *models.FriendRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.Status == "" {
		request.Status = models.FriendRequestPending
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	query := `INSERT INTO friend_requests (id, from_user_id, to_user_id, status, created_at, accepted_at)
	          VALUES (:id, :from_user_id, :to_user_id, :status, :created_at, :accepted_at)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}
	return nil
}

// GetFriendRequest retrieves a friend request by ID
func (r *NetworkRepository) GetFriendRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	query := `SELECT id, from_user_id, to_user_id, status, created_at, accepted_at
	          FROM friend_requests
	          WHERE id = $1`

	var request models.FriendRequest
	err := r.db.GetDB().GetContext(ctx, &request, query, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend request: %w", err)
	}
	return &request, nil
}

// GetPendingRequestBetween finds a pending request between two users in
// either direction.
func (r *NetworkRepository) GetPendingRequestBetween(ctx context.Context, userA, userB string) (*models.FriendRequest, error) {
	query := `SELECT id, from_user_id, to_user_id, status, created_at, accepted_at
	          FROM friend_requests
	          WHERE status = $1
	            AND ((from_user_id = $2 AND to_user_id = $3)
	              OR (from_user_id = $3 AND to_user_id = $2))`

	var request models.FriendRequest
	err := r.db.GetDB().GetContext(ctx, &request, query, models.FriendRequestPending, userA, userB)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending request: %w", err)
	}
	return &request, nil
}

// AcceptFriendRequest marks a pending request as accepted
func (r *NetworkRepository) AcceptFriendRequest(ctx context.Context, requestID string) error {
	query := `UPDATE friend_requests
	          SET status = $1, accepted_at = $2
	          WHERE id = $3 AND status = $4`

	result, err := r.db.GetDB().ExecContext(ctx, query,
		models.FriendRequestAccepted, time.Now(), requestID, models.FriendRequestPending)
	if err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// AreConnected reports whether two users have an accepted request between them
func (r *NetworkRepository) AreConnected(ctx context.Context, userA, userB string) (bool, error) {
	query := `SELECT COUNT(*)
	          FROM friend_requests
	          WHERE status = $1
	            AND ((from_user_id = $2 AND to_user_id = $3)
	              OR (from_user_id = $3 AND to_user_id = $2))`

	var count int
	if err := r.db.GetDB().GetContext(ctx, &count, query, models.FriendRequestAccepted, userA, userB); err != nil {
		return false, fmt.Errorf("failed to check connection: %w", err)
	}
	return count > 0, nil
}

// GetConnectionIDs returns the IDs of everyone the user is connected with
func (r *NetworkRepository) GetConnectionIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT CASE WHEN from_user_id = $1 THEN to_user_id ELSE from_user_id END
	          FROM friend_requests
	          WHERE status = $2 AND (from_user_id = $1 OR to_user_id = $1)`

	ids := []string{}
	if err := r.db.GetDB().SelectContext(ctx, &ids, query, userID, models.FriendRequestAccepted); err != nil {
		return nil, fmt.Errorf("failed to get connections: %w", err)
	}
	return ids, nil
}
