// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a posted financial transaction. The cashflow core
// consumes transactions read-only; each one maps 1:1 to an actual event.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   *uuid.UUID
	Description string
	Amount      decimal.Decimal // Signed: income positive, expense negative
	PostedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID *uuid.UUID,
	description string,
	amount decimal.Decimal,
	postedAt time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Description: description,
		Amount:      amount,
		PostedAt:    postedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
