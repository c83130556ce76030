// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// StopBillInput represents the input for stopping a bill.
type StopBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// StopBillOutput represents the output of stopping a bill.
type StopBillOutput struct {
	Bill *entity.RecurringBill
}

// StopBillUseCase handles bill deactivation. A stopped bill keeps its row and
// history but produces no further projected occurrences.
type StopBillUseCase struct {
	billRepo adapter.RecurringBillRepository
}

// NewStopBillUseCase creates a new StopBillUseCase instance.
func NewStopBillUseCase(billRepo adapter.RecurringBillRepository) *StopBillUseCase {
	return &StopBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill deactivation.
func (uc *StopBillUseCase) Execute(ctx context.Context, input StopBillInput) (*StopBillOutput, error) {
	bill, err := findOwnedBill(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !bill.Active {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRuleAlreadyStopped,
			"bill is already stopped",
			domainerror.ErrRuleAlreadyStopped,
		)
	}

	bill.Stop(time.Now().UTC())

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to stop bill: %w", err)
	}

	return &StopBillOutput{Bill: bill}, nil
}
