// Package event contains persisted cashflow event use cases.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/application/usecase/cashflow"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// ProjectedSlot identifies a single projected occurrence of a recurring rule:
// the rule it comes from and the date it falls on.
type ProjectedSlot struct {
	SourceKind entity.EventSourceKind
	SourceID   uuid.UUID
	Date       time.Time
}

// resolveProjectedOccurrence loads the rule behind a slot, verifies
// ownership, and re-projects the single occurrence on the slot's date. A slot
// whose date holds no occurrence of the rule is reported as an invalid event
// identifier: overrides attach to occurrences that actually happen.
func resolveProjectedOccurrence(
	ctx context.Context,
	billRepo adapter.RecurringBillRepository,
	incomeRepo adapter.RecurringIncomeRepository,
	userID uuid.UUID,
	slot ProjectedSlot,
) (*entity.CashflowEvent, error) {
	var rule cashflow.Rule

	switch slot.SourceKind {
	case entity.EventSourceBill:
		bill, err := billRepo.FindByID(ctx, slot.SourceID)
		if err != nil && !errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, fmt.Errorf("failed to find bill: %w", err)
		}
		if bill == nil || bill.UserID != userID {
			return nil, domainerror.NewCashflowError(
				domainerror.ErrCodeEventNotFound,
				"event not found",
				domainerror.ErrEventNotFound,
			)
		}
		rule = cashflow.RuleFromBill(bill)
	case entity.EventSourceIncome:
		income, err := incomeRepo.FindByID(ctx, slot.SourceID)
		if err != nil && !errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, fmt.Errorf("failed to find income: %w", err)
		}
		if income == nil || income.UserID != userID {
			return nil, domainerror.NewCashflowError(
				domainerror.ErrCodeEventNotFound,
				"event not found",
				domainerror.ErrEventNotFound,
			)
		}
		rule = cashflow.RuleFromIncome(income)
	default:
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidEventID,
			"unknown event source kind",
			domainerror.ErrInvalidEventID,
		)
	}

	day := time.Date(slot.Date.Year(), slot.Date.Month(), slot.Date.Day(), 0, 0, 0, 0, time.UTC)
	occurrences, err := cashflow.ProjectOccurrences(rule, day, day)
	if err != nil {
		return nil, err
	}
	if len(occurrences) == 0 {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidEventID,
			"no projected occurrence on this date",
			domainerror.ErrInvalidEventID,
		)
	}
	return occurrences[0], nil
}
