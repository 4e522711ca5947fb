package model

import "time"

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64    `db:"user_id" json:"user_id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Location     string    `db:"location" json:"location"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the public view of a user returned by auth endpoints
type UserInfo struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
