// Package event contains persisted cashflow event use cases: user one-offs,
// overrides of projected occurrences, and suppressions.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// MaxEventNameLength is the maximum allowed length for event names.
const MaxEventNameLength = 100

// CreateEventInput represents the input for creating a one-off event. The
// amount is signed; the event type is derived from its sign.
type CreateEventInput struct {
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	EventDate time.Time
	Metadata  map[string]any
}

// CreateEventOutput represents the output of event creation.
type CreateEventOutput struct {
	Event *entity.CashflowEvent
}

// CreateEventUseCase handles one-off event creation. One-offs have no source
// reference: they belong to no rule and no transaction, and appear in every
// timeline whose window covers their date.
type CreateEventUseCase struct {
	eventRepo adapter.CashflowEventRepository
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(eventRepo adapter.CashflowEventRepository) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute performs the one-off event creation.
func (uc *CreateEventUseCase) Execute(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error) {
	if input.Name == "" || input.EventDate.IsZero() {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeMissingEventFields,
			"name and event_date are required",
			nil,
		)
	}
	if len(input.Name) > MaxEventNameLength {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeMissingEventFields,
			fmt.Sprintf("name must not exceed %d characters", MaxEventNameLength),
			nil,
		)
	}
	if input.Amount.IsZero() {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidEventAmount,
			"amount must not be zero",
			domainerror.ErrInvalidEventAmount,
		)
	}

	eventType := entity.EventTypeIncome
	sourceKind := entity.EventSourceIncome
	if input.Amount.IsNegative() {
		eventType = entity.EventTypeExpense
		sourceKind = entity.EventSourceBill
	}

	now := time.Now().UTC()
	evt := &entity.CashflowEvent{
		ID:         uuid.New(),
		UserID:     input.UserID,
		SourceKind: sourceKind,
		Name:       input.Name,
		Amount:     input.Amount,
		EventDate:  midnightUTC(input.EventDate),
		EventType:  eventType,
		Metadata:   input.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.eventRepo.Create(ctx, evt); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &CreateEventOutput{Event: evt}, nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
