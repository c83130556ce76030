// Package income contains recurring income use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.RecurringIncome
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.RecurringIncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.RecurringIncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income listing. Stopped incomes are included unless
// ActiveOnly is set; soft-deleted incomes never are.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	var (
		incomes []*entity.RecurringIncome
		err     error
	)
	if input.ActiveOnly {
		incomes, err = uc.incomeRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		incomes, err = uc.incomeRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{Incomes: incomes}, nil
}
