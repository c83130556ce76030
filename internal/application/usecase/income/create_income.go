// Package income contains recurring income use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// MaxIncomeNameLength is the maximum allowed length for income names.
const MaxIncomeNameLength = 100

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal // Positive magnitude
	ReceiveDay int
	Recurrence entity.Recurrence
	AccountID  *uuid.UUID // Optional
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.RecurringIncome
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.RecurringIncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.RecurringIncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation. The anchor date is fixed here, at
// creation time, so later projections of interval rules never drift.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateIncomeFields(input.Name, input.Amount, input.ReceiveDay, input.Recurrence); err != nil {
		return nil, err
	}

	income := entity.NewRecurringIncome(
		input.UserID,
		input.Name,
		input.Amount,
		input.ReceiveDay,
		input.Recurrence,
		input.AccountID,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}

// validateIncomeFields checks the fields shared by income creation and update.
func validateIncomeFields(name string, amount decimal.Decimal, receiveDay int, recurrence entity.Recurrence) error {
	if name == "" {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			"name is required",
			nil,
		)
	}
	if len(name) > MaxIncomeNameLength {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			fmt.Sprintf("name must not exceed %d characters", MaxIncomeNameLength),
			nil,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRuleAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidRuleAmount,
		)
	}
	if receiveDay < 1 || receiveDay > 31 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDueDay,
			"receive day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}
	if !recurrence.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence must be 'monthly', 'biweekly' or 'weekly'",
			domainerror.ErrInvalidRecurrence,
		)
	}
	return nil
}
