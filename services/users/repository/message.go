package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hoopspot/hoopspot/internal/pkg/database"
	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// MessageRepository handles direct message persistence in PostgreSQL
type MessageRepository struct {
	db *database.PostgresClient
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *database.PostgresClient) *MessageRepository {
	return &MessageRepository{db: db}
}

// SaveMessage inserts a new direct message
func (r *MessageRepository) SaveMessage(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	query := `INSERT INTO messages (id, from_user_id, to_user_id, message, created_at, read)
	          VALUES (:id, :from_user_id, :to_user_id, :message, :created_at, :read)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// GetConversations returns one summary row per counterpart the user has
// exchanged messages with, most recent first.
func (r *MessageRepository) GetConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	query := `
	SELECT u.id AS user_id,
	       u.username,
	       u.profile_pic,
	       t.last_message,
	       t.last_at,
	       t.unread_count
	FROM (
	    SELECT CASE WHEN m.from_user_id = $1 THEN m.to_user_id ELSE m.from_user_id END AS other_id,
	           (ARRAY_AGG(m.message ORDER BY m.created_at DESC))[1] AS last_message,
	           MAX(m.created_at) AS last_at,
	           COUNT(*) FILTER (WHERE m.to_user_id = $1 AND NOT m.read) AS unread_count
	    FROM messages m
	    WHERE m.from_user_id = $1 OR m.to_user_id = $1
	    GROUP BY other_id
	) t
	JOIN users u ON u.id = t.other_id
	ORDER BY t.last_at DESC`

	conversations := []models.Conversation{}
	if err := r.db.GetDB().SelectContext(ctx, &conversations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}
	return conversations, nil
}

// GetMessagesBetween returns the full thread between two users, oldest first
func (r *MessageRepository) GetMessagesBetween(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	query := `SELECT id, from_user_id, to_user_id, message, created_at, read
	          FROM messages
	          WHERE (from_user_id = $1 AND to_user_id = $2)
	             OR (from_user_id = $2 AND to_user_id = $1)
	          ORDER BY created_at`

	messages := []models.Message{}
	if err := r.db.GetDB().SelectContext(ctx, &messages, query, userID, otherUserID); err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

// MarkRead marks every message from otherUserID to userID as read
func (r *MessageRepository) MarkRead(ctx context.Context, userID, otherUserID string) error {
	query := `UPDATE messages SET read = TRUE
	          WHERE to_user_id = $1 AND from_user_id = $2 AND NOT read`

	if _, err := r.db.GetDB().ExecContext(ctx, query, userID, otherUserID); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}
