// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder in the Cashflowd system.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	Timezone      string
	Currency      string
	BillReminders bool // Opt-in for upcoming-bill reminder emails
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User with default preferences.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		PasswordHash:  passwordHash,
		Timezone:      "UTC",
		Currency:      "USD",
		BillReminders: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
