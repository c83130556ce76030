// Package bill contains recurring bill use cases.
package bill

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

// UpdateBillInput represents the input for bill update. Nil pointers leave
// the field unchanged.
type UpdateBillInput struct {
	BillID        uuid.UUID
	UserID        uuid.UUID
	Name          *string
	Amount        *decimal.Decimal
	DueDay        *int
	Recurrence    *entity.Recurrence
	CategoryID    *uuid.UUID
	ClearCategory bool // Set to true to remove the category reference
	AccountID     *uuid.UUID
}

// UpdateBillOutput represents the output of bill update.
type UpdateBillOutput struct {
	Bill *entity.RecurringBill
}

// UpdateBillUseCase handles bill update logic.
type UpdateBillUseCase struct {
	billRepo     adapter.RecurringBillRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(
	billRepo adapter.RecurringBillRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the bill update. Changing the due day or recurrence
// re-resolves the anchor date from now: the rule's schedule restarts rather
// than retrofitting past occurrences.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	bill, err := findOwnedBill(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		bill.Name = *input.Name
	}
	if input.Amount != nil {
		bill.Amount = *input.Amount
	}

	scheduleChanged := false
	if input.DueDay != nil && *input.DueDay != bill.DueDay {
		bill.DueDay = *input.DueDay
		scheduleChanged = true
	}
	if input.Recurrence != nil && *input.Recurrence != bill.Recurrence {
		bill.Recurrence = *input.Recurrence
		scheduleChanged = true
	}

	if err := validateRuleFields(bill.Name, bill.Amount, bill.DueDay, bill.Recurrence); err != nil {
		return nil, err
	}

	if input.ClearCategory {
		bill.CategoryID = nil
	} else if input.CategoryID != nil {
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
		bill.CategoryID = input.CategoryID
	}
	if input.AccountID != nil {
		bill.AccountID = input.AccountID
	}

	now := time.Now().UTC()
	if scheduleChanged {
		bill.AnchorDate = entity.ResolveAnchorDate(now, bill.DueDay, bill.Recurrence)
	}
	bill.UpdatedAt = now

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return &UpdateBillOutput{Bill: bill}, nil
}

// findOwnedBill loads a bill and verifies ownership. A bill belonging to
// another user reports not-found rather than confirming it exists.
func findOwnedBill(ctx context.Context, repo adapter.RecurringBillRepository, billID, userID uuid.UUID) (*entity.RecurringBill, error) {
	bill, err := repo.FindByID(ctx, billID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}
	if bill == nil || bill.UserID != userID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeBillNotFound,
			"bill not found",
			domainerror.ErrBillNotFound,
		)
	}
	return bill, nil
}
