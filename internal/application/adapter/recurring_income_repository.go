// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// RecurringIncomeRepository defines the interface for recurring income persistence operations.
type RecurringIncomeRepository interface {
	// Create creates a new recurring income in the database.
	Create(ctx context.Context, income *entity.RecurringIncome) error

	// FindByID retrieves an income by its ID, soft-deleted rows excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringIncome, error)

	// FindByUser retrieves all non-deleted incomes for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringIncome, error)

	// FindActiveByUser retrieves the user's active, non-deleted incomes.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringIncome, error)

	// Update updates an existing income in the database.
	Update(ctx context.Context, income *entity.RecurringIncome) error

	// Delete removes an income from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// LatestModification returns the most recent updated_at across the
	// user's incomes, used as part of the timeline cache version stamp.
	LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error)
}
