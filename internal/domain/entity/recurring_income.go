// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringIncome represents a user-declared periodic income. It mirrors
// RecurringBill structurally but carries a receive day instead of a due day
// and no expense-category coupling.
type RecurringIncome struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal // Always positive
	ReceiveDay int             // Day of month the income is received (1-31)
	Recurrence Recurrence
	AnchorDate time.Time // Date of the first occurrence, fixed at creation
	AccountID  *uuid.UUID
	Active     bool
	StoppedAt  *time.Time // Set exactly when Active transitions to false
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewRecurringIncome creates a new RecurringIncome entity.
func NewRecurringIncome(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	receiveDay int,
	recurrence Recurrence,
	accountID *uuid.UUID,
) *RecurringIncome {
	now := time.Now().UTC()

	return &RecurringIncome{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		ReceiveDay: receiveDay,
		Recurrence: recurrence,
		AnchorDate: ResolveAnchorDate(now, receiveDay, recurrence),
		AccountID:  accountID,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Stop deactivates the income. Stopping is a one-way transition; Reactivate
// is the distinct inverse operation.
func (i *RecurringIncome) Stop(at time.Time) {
	i.Active = false
	i.StoppedAt = &at
	i.UpdatedAt = at
}

// Reactivate clears the stopped state and marks the income active again.
func (i *RecurringIncome) Reactivate(at time.Time) {
	i.Active = true
	i.StoppedAt = nil
	i.UpdatedAt = at
}
