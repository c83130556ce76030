// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// The cashflow core consumes it read-only through FindByUserAndRange; the rest
// exists so the simulator can seed and manage posted transactions.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID, soft-deleted rows excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all non-deleted transactions for a given user,
	// most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUserAndRange retrieves the user's non-deleted transactions
	// posted within [start, end] inclusive, date ascending.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// Delete removes a transaction from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// LatestModification returns the most recent updated_at across the
	// user's transactions, used as part of the timeline cache version stamp.
	LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error)
}
