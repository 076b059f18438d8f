package users

import (
	"github.com/google/uuid"

	"github.com/campuskart/campuskart-backend/pkg/db/models"
	"github.com/campuskart/campuskart-backend/pkg/enums"
)

// UserDTO is the transport shape that omits the password digest.
type UserDTO struct {
	ID    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Class string         `json:"class"`
	Phone string         `json:"phone"`
	Role  enums.UserRole `json:"role"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Email        string
	PasswordHash string
	Class        string
	Phone        string
	Role         enums.UserRole
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Class: u.Class,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = enums.UserRoleMember
	}

	return &models.User{
		ID:           uuid.New(),
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Class:        c.Class,
		Phone:        c.Phone,
		Role:         role,
	}
}
