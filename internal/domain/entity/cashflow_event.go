// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventSourceKind identifies what a cashflow event was derived from.
type EventSourceKind string

const (
	EventSourceBill        EventSourceKind = "bill"
	EventSourceIncome      EventSourceKind = "income"
	EventSourceTransaction EventSourceKind = "transaction"
)

// EventType represents the direction of a cashflow event.
type EventType string

const (
	EventTypeIncome  EventType = "income"
	EventTypeExpense EventType = "expense"
)

// CashflowEvent is one entry in a user's cashflow timeline. Projected events
// are synthetic (ID is uuid.Nil, never stored) and regenerated from their rule
// on every request; actual events mirror a posted transaction; persisted
// events are durable rows holding user one-offs, overrides of projected
// occurrences, or cosmetic edits to actuals.
type CashflowEvent struct {
	ID         uuid.UUID // uuid.Nil for synthetic events
	UserID     uuid.UUID
	SourceKind EventSourceKind
	SourceID   *uuid.UUID // Rule or transaction reference; nil for one-off events
	Name       string
	Amount     decimal.Decimal // Signed: income positive, expense negative
	EventDate  time.Time
	EventType  EventType
	Processed  bool // True only for transaction-backed events
	Suppressed bool // Override marker: this occurrence never happens
	Metadata   map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// Persisted reports whether the event is backed by a database row.
func (e *CashflowEvent) Persisted() bool {
	return e.ID != uuid.Nil
}

// SlotKey identifies the projected-occurrence slot an event occupies, used to
// match overrides against projected events. Events without a source reference
// have no slot.
func (e *CashflowEvent) SlotKey() (EventSlot, bool) {
	if e.SourceID == nil {
		return EventSlot{}, false
	}
	return EventSlot{
		SourceKind: e.SourceKind,
		SourceID:   *e.SourceID,
		Date:       e.EventDate.Format("2006-01-02"),
	}, true
}

// EventSlot is the (sourceKind, sourceID, eventDate) tuple keying at most one
// override per projected occurrence.
type EventSlot struct {
	SourceKind EventSourceKind
	SourceID   uuid.UUID
	Date       string // YYYY-MM-DD
}

// CashflowSummary holds the aggregated totals for a cashflow timeline.
type CashflowSummary struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal // Absolute value
	Net            decimal.Decimal // TotalIncome - TotalExpense, exact
	AverageIncome  decimal.Decimal // Per whole month spanned by the window
	AverageExpense decimal.Decimal
	CountIncome    int
	CountExpense   int
}

// Timeline bundles the merged events with their summary.
type Timeline struct {
	Events  []*CashflowEvent
	Summary CashflowSummary
}
