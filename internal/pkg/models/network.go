package models

import "time"

// Friend request lifecycle states
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
)

// FriendRequest represents a connection request between two users
type FriendRequest struct {
	ID         string     `json:"id" db:"id"`
	FromUserID string     `json:"fromUserId" db:"from_user_id"`
	ToUserID   string     `json:"toUserId" db:"to_user_id"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty" db:"accepted_at"`
}

// FriendRequestPayload is the payload for creating a friend request
type FriendRequestPayload struct {
	ToUserID string `json:"toUserId"`
}

// FriendRequestResult reports the outcome of a friend-request operation
type FriendRequestResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Connection is another user the caller is (or could be) connected with
type Connection struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	ProfilePic  string `json:"profilePic,omitempty"`
	IsConnected bool   `json:"isConnected"`
}
