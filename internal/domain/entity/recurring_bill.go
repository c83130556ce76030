// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringBill represents a user-declared periodic expense.
type RecurringBill struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal // Always positive; the projector applies the expense sign
	DueDay     int             // Day of month the bill is due (1-31)
	Recurrence Recurrence
	AnchorDate time.Time // Date of the first occurrence, fixed at creation
	CategoryID *uuid.UUID
	AccountID  *uuid.UUID // Optional funding account
	Active     bool
	StoppedAt  *time.Time // Set exactly when Active transitions to false
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewRecurringBill creates a new RecurringBill entity. The anchor date is the
// bill's first occurrence: the first date at or after creation that lands on
// the due day for monthly rules, or the creation date itself for interval
// rules (biweekly, weekly), which advance from this fixed epoch thereafter.
func NewRecurringBill(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	dueDay int,
	recurrence Recurrence,
	categoryID, accountID *uuid.UUID,
) *RecurringBill {
	now := time.Now().UTC()

	return &RecurringBill{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		DueDay:     dueDay,
		Recurrence: recurrence,
		AnchorDate: ResolveAnchorDate(now, dueDay, recurrence),
		CategoryID: categoryID,
		AccountID:  accountID,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Stop deactivates the bill. Stopping is a one-way transition; Reactivate is
// the distinct inverse operation.
func (b *RecurringBill) Stop(at time.Time) {
	b.Active = false
	b.StoppedAt = &at
	b.UpdatedAt = at
}

// Reactivate clears the stopped state and marks the bill active again.
func (b *RecurringBill) Reactivate(at time.Time) {
	b.Active = true
	b.StoppedAt = nil
	b.UpdatedAt = at
}

// ResolveAnchorDate computes the first occurrence date for a rule created at
// the given instant. Monthly rules anchor to the first date at or after
// creation landing on the due day (clamped to short months); interval rules
// anchor to the creation date, truncated to midnight UTC.
func ResolveAnchorDate(createdAt time.Time, dueDay int, recurrence Recurrence) time.Time {
	day := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC)
	if recurrence != RecurrenceMonthly {
		return day
	}

	anchor := ClampToMonth(day.Year(), day.Month(), dueDay)
	if anchor.Before(day) {
		next := day.AddDate(0, 1, 0)
		anchor = ClampToMonth(next.Year(), next.Month(), dueDay)
	}
	return anchor
}

// ClampToMonth returns the given day within year/month, clamped to the last
// day of the month when the day exceeds the month's length.
func ClampToMonth(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
