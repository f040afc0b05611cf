package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("user not found")
)

// User is the account that owns vehicles and their records.
type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	Name            string
	ActiveVehicleID *uuid.UUID
	CreatedAt       time.Time
}
