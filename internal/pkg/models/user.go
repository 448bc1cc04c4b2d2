package models

import "time"

// User represents an app user
type User struct {
	ID             string    `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"-" db:"password"`
	ProfilePic     string    `json:"profilePic,omitempty" db:"profile_pic"`
	AvatarURL      string    `json:"avatarUrl,omitempty" db:"avatar_url"`
	IsPublic       bool      `json:"isPublic" db:"is_public"`
	CurrentCourtID string    `json:"currentCourtId,omitempty" db:"current_court_id"`
	CreatedAt      time.Time `json:"-" db:"created_at"`
	UpdatedAt      time.Time `json:"-" db:"updated_at"`
}

// UserSummary is the public listing view of a user
type UserSummary struct {
	ID         string `json:"id" db:"id"`
	Username   string `json:"username" db:"username"`
	ProfilePic string `json:"profilePic,omitempty" db:"profile_pic"`
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a freshly issued token and the authenticated user
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ProfileUpdateRequest carries optional profile field updates
type ProfileUpdateRequest struct {
	Username   string `json:"username,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// PrivacyResponse reports the user's visibility after a toggle
type PrivacyResponse struct {
	IsPublic bool `json:"isPublic"`
}
