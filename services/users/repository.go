package users

import (
	"context"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

// UserRepo defines the interface for user account data access
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	SetVisibility(ctx context.Context, userID string, isPublic bool) error
	SetCurrentCourt(ctx context.Context, userID, courtID string) error
	ClearCurrentCourt(ctx context.Context, userID string) error
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]models.User, error)
	ListUsers(ctx context.Context, excludeUserID string) ([]models.UserSummary, error)
	ListPublicUsers(ctx context.Context, excludeUserID string) ([]models.User, error)
}

// MessageRepo defines the interface for direct message data access
type MessageRepo interface {
	SaveMessage(ctx context.Context, message *models.Message) error
	GetConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	GetMessagesBetween(ctx context.Context, userID, otherUserID string) ([]models.Message, error)
	MarkRead(ctx context.Context, userID, otherUserID string) error
}

// NetworkRepo defines the interface for friend connection data access
type NetworkRepo interface {
	CreateFriendRequest(ctx context.Context, request *models.FriendRequest) error
	GetFriendRequest(ctx context.Context, requestID string) (*models.FriendRequest, error)
	GetPendingRequestBetween(ctx context.Context, userA, userB string) (*models.FriendRequest, error)
	AcceptFriendRequest(ctx context.Context, requestID string) error
	AreConnected(ctx context.Context, userA, userB string) (bool, error)
	GetConnectionIDs(ctx context.Context, userID string) ([]string, error)
}
