// Package user manages accounts and their bcrypt password hashes.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Staff        bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
