// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// MaxBillNameLength is the maximum allowed length for bill names.
const MaxBillNameLength = 100

// CreateBillInput represents the input for bill creation.
type CreateBillInput struct {
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal // Positive magnitude
	DueDay     int
	Recurrence entity.Recurrence
	CategoryID *uuid.UUID // Optional
	AccountID  *uuid.UUID // Optional
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.RecurringBill
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo     adapter.RecurringBillRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(
	billRepo adapter.RecurringBillRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the bill creation. The anchor date is fixed here, at
// creation time, so later projections of interval rules never drift.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	if err := validateRuleFields(input.Name, input.Amount, input.DueDay, input.Recurrence); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if category == nil || category.UserID != input.UserID {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRuleCategoryNotFound,
				"category not found",
				domainerror.ErrRuleCategoryNotFound,
			)
		}
	}

	bill := entity.NewRecurringBill(
		input.UserID,
		input.Name,
		input.Amount,
		input.DueDay,
		input.Recurrence,
		input.CategoryID,
		input.AccountID,
	)

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return &CreateBillOutput{Bill: bill}, nil
}

// validateRuleFields checks the fields shared by bill creation and update.
func validateRuleFields(name string, amount decimal.Decimal, dueDay int, recurrence entity.Recurrence) error {
	if name == "" {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			"name is required",
			nil,
		)
	}
	if len(name) > MaxBillNameLength {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			fmt.Sprintf("name must not exceed %d characters", MaxBillNameLength),
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
	if dueDay < 1 || dueDay > 31 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
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
