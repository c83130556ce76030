// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// CashflowEventRepository defines the interface for persisted cashflow event operations.
type CashflowEventRepository interface {
	// Create creates a new persisted event (a user one-off).
	Create(ctx context.Context, event *entity.CashflowEvent) error

	// FindByID retrieves a persisted event by its ID, soft-deleted rows excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CashflowEvent, error)

	// FindForWindow retrieves the user's non-deleted persisted events whose
	// event date falls within [start, end] inclusive.
	FindForWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CashflowEvent, error)

	// UpsertOverride inserts or updates the override row for the event's
	// (userID, sourceKind, sourceID, eventDate) slot. At most one override
	// exists per projected-occurrence slot.
	UpsertOverride(ctx context.Context, event *entity.CashflowEvent) error

	// Update updates an existing persisted event.
	Update(ctx context.Context, event *entity.CashflowEvent) error

	// Delete removes a persisted event from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// LatestModification returns the most recent updated_at across the
	// user's persisted events, used as part of the timeline cache version stamp.
	LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error)
}
