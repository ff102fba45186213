package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error
}

// User represents a stored user with authentication material.
type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subject returns the claim set carried by the user's tokens.
func (u User) Subject() Subject {
	return Subject{ID: u.ID, Email: u.Email, Role: u.Role}
}

// Subject is the identity materialized into access tokens and attached to
// authenticated requests.
type Subject struct {
	ID    int64
	Email string
	Role  Role
}
