package models

import (
	"time"
)

// Roles a user can hold. Admin accounts are seeded directly in the
// database and can never be created through registration.
const (
	RoleUser   = "USER"
	RoleDoctor = "DOCTOR"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserResponse is the public projection of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// LoginResponse carries the identity handed back to the transport
// layer after a successful credential check.
type LoginResponse struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}
