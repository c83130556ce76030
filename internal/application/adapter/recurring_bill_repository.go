// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// RecurringBillRepository defines the interface for recurring bill persistence operations.
type RecurringBillRepository interface {
	// Create creates a new recurring bill in the database.
	Create(ctx context.Context, bill *entity.RecurringBill) error

	// FindByID retrieves a bill by its ID, soft-deleted rows excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error)

	// FindByUser retrieves all non-deleted bills for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringBill, error)

	// FindActiveByUser retrieves the user's active, non-deleted bills, the
	// only rules the projector ever expands.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringBill, error)

	// Update updates an existing bill in the database.
	Update(ctx context.Context, bill *entity.RecurringBill) error

	// Delete removes a bill from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// LatestModification returns the most recent updated_at across the
	// user's bills, used as part of the timeline cache version stamp.
	LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error)
}
