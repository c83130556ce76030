// Package event contains persisted cashflow event use cases.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// UpdateEventInput represents the input for event update. Exactly one of
// EventID (a persisted event) or Slot (a projected occurrence) must be set.
// Nil pointers leave the field unchanged.
type UpdateEventInput struct {
	UserID    uuid.UUID
	EventID   *uuid.UUID
	Slot      *ProjectedSlot
	Name      *string
	Amount    *decimal.Decimal // Signed
	EventDate *time.Time       // Persisted events only; slots are date-keyed
}

// UpdateEventOutput represents the output of event update.
type UpdateEventOutput struct {
	Event *entity.CashflowEvent
}

// UpdateEventUseCase handles event update logic. Updating a projected
// occurrence materializes it: an override row is upserted for the occurrence's
// slot, and the timeline substitutes it for the projection from then on.
type UpdateEventUseCase struct {
	eventRepo  adapter.CashflowEventRepository
	billRepo   adapter.RecurringBillRepository
	incomeRepo adapter.RecurringIncomeRepository
}

// NewUpdateEventUseCase creates a new UpdateEventUseCase instance.
func NewUpdateEventUseCase(
	eventRepo adapter.CashflowEventRepository,
	billRepo adapter.RecurringBillRepository,
	incomeRepo adapter.RecurringIncomeRepository,
) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo:  eventRepo,
		billRepo:   billRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute performs the event update.
func (uc *UpdateEventUseCase) Execute(ctx context.Context, input UpdateEventInput) (*UpdateEventOutput, error) {
	switch {
	case input.EventID != nil && input.Slot == nil:
		return uc.updatePersisted(ctx, input)
	case input.Slot != nil && input.EventID == nil:
		return uc.overrideOccurrence(ctx, input)
	default:
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidEventID,
			"exactly one of event id or occurrence slot must be given",
			domainerror.ErrInvalidEventID,
		)
	}
}

func (uc *UpdateEventUseCase) updatePersisted(ctx context.Context, input UpdateEventInput) (*UpdateEventOutput, error) {
	evt, err := findOwnedEvent(ctx, uc.eventRepo, *input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		evt.Name = *input.Name
	}
	if input.Amount != nil {
		if input.Amount.IsZero() {
			return nil, domainerror.NewCashflowError(
				domainerror.ErrCodeInvalidEventAmount,
				"amount must not be zero",
				domainerror.ErrInvalidEventAmount,
			)
		}
		evt.Amount = *input.Amount
		evt.EventType = eventTypeFor(*input.Amount)
	}
	if input.EventDate != nil {
		if evt.SourceID != nil {
			// An override's slot is keyed by its date; moving it would
			// detach it from the occurrence it overrides.
			return nil, domainerror.NewCashflowError(
				domainerror.ErrCodeInvalidEventID,
				"cannot move an event tied to a projected occurrence",
				domainerror.ErrInvalidEventID,
			)
		}
		evt.EventDate = midnightUTC(*input.EventDate)
	}
	evt.UpdatedAt = time.Now().UTC()

	if err := uc.eventRepo.Update(ctx, evt); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &UpdateEventOutput{Event: evt}, nil
}

func (uc *UpdateEventUseCase) overrideOccurrence(ctx context.Context, input UpdateEventInput) (*UpdateEventOutput, error) {
	occurrence, err := resolveProjectedOccurrence(ctx, uc.billRepo, uc.incomeRepo, input.UserID, *input.Slot)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil && input.Amount.IsZero() {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidEventAmount,
			"amount must not be zero",
			domainerror.ErrInvalidEventAmount,
		)
	}

	now := time.Now().UTC()
	override := &entity.CashflowEvent{
		ID:         uuid.New(),
		UserID:     input.UserID,
		SourceKind: occurrence.SourceKind,
		SourceID:   occurrence.SourceID,
		Name:       occurrence.Name,
		Amount:     occurrence.Amount,
		EventDate:  occurrence.EventDate,
		EventType:  occurrence.EventType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.Name != nil {
		override.Name = *input.Name
	}
	if input.Amount != nil {
		override.Amount = *input.Amount
		override.EventType = eventTypeFor(*input.Amount)
	}

	if err := uc.eventRepo.UpsertOverride(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to store override: %w", err)
	}

	return &UpdateEventOutput{Event: override}, nil
}

// findOwnedEvent loads a persisted event and verifies ownership. An event
// belonging to another user reports not-found rather than confirming it
// exists.
func findOwnedEvent(ctx context.Context, repo adapter.CashflowEventRepository, eventID, userID uuid.UUID) (*entity.CashflowEvent, error) {
	evt, err := repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEventNotFound) {
			return nil, domainerror.NewCashflowError(
				domainerror.ErrCodeEventNotFound,
				"event not found",
				domainerror.ErrEventNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	if evt == nil || evt.UserID != userID {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeEventNotFound,
			"event not found",
			domainerror.ErrEventNotFound,
		)
	}
	return evt, nil
}

func eventTypeFor(amount decimal.Decimal) entity.EventType {
	if amount.IsNegative() {
		return entity.EventTypeExpense
	}
	return entity.EventTypeIncome
}
