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

// StopIncomeInput represents the input for stopping an income.
type StopIncomeInput struct {
	IncomeID uuid.UUID
	UserID   uuid.UUID
}

// StopIncomeOutput represents the output of stopping an income.
type StopIncomeOutput struct {
	Income *entity.RecurringIncome
}

// StopIncomeUseCase handles income deactivation. A stopped income keeps its
// row and history but produces no further projected occurrences.
type StopIncomeUseCase struct {
	incomeRepo adapter.RecurringIncomeRepository
}

// NewStopIncomeUseCase creates a new StopIncomeUseCase instance.
func NewStopIncomeUseCase(incomeRepo adapter.RecurringIncomeRepository) *StopIncomeUseCase {
	return &StopIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deactivation.
func (uc *StopIncomeUseCase) Execute(ctx context.Context, input StopIncomeInput) (*StopIncomeOutput, error) {
	income, err := findOwnedIncome(ctx, uc.incomeRepo, input.IncomeID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !income.Active {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRuleAlreadyStopped,
			"income is already stopped",
			domainerror.ErrRuleAlreadyStopped,
		)
	}

	income.Stop(time.Now().UTC())

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to stop income: %w", err)
	}

	return &StopIncomeOutput{Income: income}, nil
}
