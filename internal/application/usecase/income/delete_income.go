// Package income contains recurring income use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
	UserID   uuid.UUID
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase handles income deletion. Deletion is a soft delete and
// removes the income from every future timeline, unlike stopping.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.RecurringIncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.RecurringIncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	income, err := findOwnedIncome(ctx, uc.incomeRepo, input.IncomeID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Delete(ctx, income.ID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	return &DeleteIncomeOutput{Success: true}, nil
}
