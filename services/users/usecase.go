package users

import (
	"context"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// UserUC defines the interface for user business logic
type UserUC interface {
	// Auth operations
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// Profile operations
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUsers(ctx context.Context, excludeUserID string) ([]models.UserSummary, error)
	UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdateRequest) (*models.User, error)
	TogglePrivacy(ctx context.Context, userID string) (*models.PrivacyResponse, error)

	// Messaging operations
	SendMessage(ctx context.Context, fromUserID string, req *models.SendMessageRequest) (*models.Message, error)
	GetConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	GetConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error)

	// Network operations
	SendFriendRequest(ctx context.Context, fromUserID, toUserID string) (*models.FriendRequestResult, error)
	AcceptFriendRequest(ctx context.Context, userID, requestID string) (*models.FriendRequestResult, error)
	GetConnections(ctx context.Context, userID string) ([]models.Connection, error)
	GetRecentPlayers(ctx context.Context, userID string) ([]models.Connection, error)

	// Check-in event handling
	ApplyCheckinEvent(ctx context.Context, event *models.CheckinEvent) error
}
