// Package event contains persisted cashflow event use cases.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// DeleteEventInput represents the input for event deletion. Exactly one of
// EventID (a persisted event) or Slot (a projected occurrence) must be set.
type DeleteEventInput struct {
	UserID  uuid.UUID
	EventID *uuid.UUID
	Slot    *ProjectedSlot
}

// DeleteEventOutput represents the output of event deletion.
type DeleteEventOutput struct {
	Success bool
}

// DeleteEventUseCase handles event deletion. Deleting a persisted event soft
// deletes its row; deleting a projected occurrence stores a suppression
// override — the occurrence has no row to delete, so a marker row records
// that this one occurrence never happens. The rule itself keeps projecting
// every other date.
type DeleteEventUseCase struct {
	eventRepo  adapter.CashflowEventRepository
	billRepo   adapter.RecurringBillRepository
	incomeRepo adapter.RecurringIncomeRepository
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase instance.
func NewDeleteEventUseCase(
	eventRepo adapter.CashflowEventRepository,
	billRepo adapter.RecurringBillRepository,
	incomeRepo adapter.RecurringIncomeRepository,
) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo:  eventRepo,
		billRepo:   billRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute performs the event deletion or suppression.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, input DeleteEventInput) (*DeleteEventOutput, error) {
	switch {
	case input.EventID != nil && input.Slot == nil:
		evt, err := findOwnedEvent(ctx, uc.eventRepo, *input.EventID, input.UserID)
		if err != nil {
			return nil, err
		}
		if err := uc.eventRepo.Delete(ctx, evt.ID); err != nil {
			return nil, fmt.Errorf("failed to delete event: %w", err)
		}
		return &DeleteEventOutput{Success: true}, nil

	case input.Slot != nil && input.EventID == nil:
		occurrence, err := resolveProjectedOccurrence(ctx, uc.billRepo, uc.incomeRepo, input.UserID, *input.Slot)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		suppression := &entity.CashflowEvent{
			ID:         uuid.New(),
			UserID:     input.UserID,
			SourceKind: occurrence.SourceKind,
			SourceID:   occurrence.SourceID,
			Name:       occurrence.Name,
			Amount:     occurrence.Amount,
			EventDate:  occurrence.EventDate,
			EventType:  occurrence.EventType,
			Suppressed: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := uc.eventRepo.UpsertOverride(ctx, suppression); err != nil {
			return nil, fmt.Errorf("failed to store suppression: %w", err)
		}
		return &DeleteEventOutput{Success: true}, nil

	default:
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidEventID,
			"exactly one of event id or occurrence slot must be given",
			domainerror.ErrInvalidEventID,
		)
	}
}
