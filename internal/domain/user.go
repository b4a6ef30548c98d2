package domain

import (
	"context"
	"time"
)

// Role classifies a caller. It governs catalog visibility (instructors see
// only their own quizzes) and creation rights.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
)

// ParseRole maps a stored or claimed role string onto a known Role.
// Unknown values degrade to STUDENT, the least privileged role.
func ParseRole(s string) Role {
	if Role(s) == RoleInstructor {
		return RoleInstructor
	}
	return RoleStudent
}

// User represents a domain user object
type User struct {
	ID        string
	GoogleID  string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewUser creates a new User instance with the default STUDENT role.
func NewUser(googleID, email string) *User {
	now := time.Now()
	return &User{
		GoogleID:  googleID,
		Email:     email,
		Role:      RoleStudent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.GoogleID == "" {
		return NewMissingFieldError("google_id")
	}
	if u.Email == "" {
		return NewMissingFieldError("email")
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
