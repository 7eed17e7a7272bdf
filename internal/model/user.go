package model

import "time"

// User represents a row in the users table.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is a user joined with its profile row. Profile columns are
// nullable because the join is a LEFT JOIN.
type UserProfile struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email"`
	ProfileImage *string   `json:"profile_image"`
	Detail       *string   `json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned on successful registration. The token is a
// real signed session token, issued through the same path as login.
type RegisterResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// LoginResponse carries the session token for an authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest represents a profile update. All three fields are
// overwritten as provided: omitting a field nulls the column. This is the
// documented contract of the update operation.
type UpdateProfileRequest struct {
	Email        *string `json:"email"`
	ProfileImage *string `json:"profile_image"`
	Detail       *string `json:"detail"`
}
