// Package income contains recurring income use cases.
package income

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

// UpdateIncomeInput represents the input for income update. Nil pointers
// leave the field unchanged.
type UpdateIncomeInput struct {
	IncomeID   uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Amount     *decimal.Decimal
	ReceiveDay *int
	Recurrence *entity.Recurrence
	AccountID  *uuid.UUID
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.RecurringIncome
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.RecurringIncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.RecurringIncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update. Changing the receive day or recurrence
// re-resolves the anchor date from now, restarting the schedule.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	income, err := findOwnedIncome(ctx, uc.incomeRepo, input.IncomeID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		income.Name = *input.Name
	}
	if input.Amount != nil {
		income.Amount = *input.Amount
	}

	scheduleChanged := false
	if input.ReceiveDay != nil && *input.ReceiveDay != income.ReceiveDay {
		income.ReceiveDay = *input.ReceiveDay
		scheduleChanged = true
	}
	if input.Recurrence != nil && *input.Recurrence != income.Recurrence {
		income.Recurrence = *input.Recurrence
		scheduleChanged = true
	}

	if err := validateIncomeFields(income.Name, income.Amount, income.ReceiveDay, income.Recurrence); err != nil {
		return nil, err
	}

	if input.AccountID != nil {
		income.AccountID = input.AccountID
	}

	now := time.Now().UTC()
	if scheduleChanged {
		income.AnchorDate = entity.ResolveAnchorDate(now, income.ReceiveDay, income.Recurrence)
	}
	income.UpdatedAt = now

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{Income: income}, nil
}

// findOwnedIncome loads an income and verifies ownership. An income belonging
// to another user reports not-found rather than confirming it exists.
func findOwnedIncome(ctx context.Context, repo adapter.RecurringIncomeRepository, incomeID, userID uuid.UUID) (*entity.RecurringIncome, error) {
	income, err := repo.FindByID(ctx, incomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}
	if income == nil || income.UserID != userID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}
	return income, nil
}
