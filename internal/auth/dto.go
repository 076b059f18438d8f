package auth

import "github.com/campuskart/campuskart-backend/internal/users"

// RegisterRequest is the signup payload. Every field is required.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Class    string `json:"class" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is returned by both register and login: a signed token plus the
// public shape of the account it belongs to.
type Session struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}
