// Package income contains recurring income use cases.
package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// ReactivateIncomeInput represents the input for reactivating a stopped income.
type ReactivateIncomeInput struct {
	IncomeID uuid.UUID
	UserID   uuid.UUID
}

// ReactivateIncomeOutput represents the output of reactivating an income.
type ReactivateIncomeOutput struct {
	Income *entity.RecurringIncome
}

// ReactivateIncomeUseCase handles turning a stopped income back on.
type ReactivateIncomeUseCase struct {
	incomeRepo adapter.RecurringIncomeRepository
}

// NewReactivateIncomeUseCase creates a new ReactivateIncomeUseCase instance.
func NewReactivateIncomeUseCase(incomeRepo adapter.RecurringIncomeRepository) *ReactivateIncomeUseCase {
	return &ReactivateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income reactivation. The anchor date is left
// untouched: interval rules resume on their original cadence.
func (uc *ReactivateIncomeUseCase) Execute(ctx context.Context, input ReactivateIncomeInput) (*ReactivateIncomeOutput, error) {
	income, err := findOwnedIncome(ctx, uc.incomeRepo, input.IncomeID, input.UserID)
	if err != nil {
		return nil, err
	}

	if income.Active {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRuleNotStopped,
			"income is not stopped",
			domainerror.ErrRuleNotStopped,
		)
	}

	income.Reactivate(time.Now().UTC())

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to reactivate income: %w", err)
	}

	return &ReactivateIncomeOutput{Income: income}, nil
}
