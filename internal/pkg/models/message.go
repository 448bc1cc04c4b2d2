package models

import "time"

// Message represents a direct message between two users
type Message struct {
	ID         string    `json:"id" db:"id"`
	FromUserID string    `json:"fromUserId" db:"from_user_id"`
	ToUserID   string    `json:"toUserId" db:"to_user_id"`
	Message    string    `json:"message" db:"message"`
	Timestamp  time.Time `json:"timestamp" db:"created_at"`
	Read       bool      `json:"read" db:"read"`
}

// SendMessageRequest is the payload for sending a message
type SendMessageRequest struct {
	ToUserID string `json:"toUserId"`
	Message  string `json:"message"`
}

// Conversation summarizes the message thread with one other user
type Conversation struct {
	UserID      string    `json:"userId" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	ProfilePic  string    `json:"profilePic,omitempty" db:"profile_pic"`
	LastMessage string    `json:"lastMessage" db:"last_message"`
	Timestamp   time.Time `json:"timestamp" db:"last_at"`
	UnreadCount int       `json:"unreadCount" db:"unread_count"`
}
