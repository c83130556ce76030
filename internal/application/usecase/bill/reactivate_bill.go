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

// ReactivateBillInput represents the input for reactivating a stopped bill.
type ReactivateBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// ReactivateBillOutput represents the output of reactivating a bill.
type ReactivateBillOutput struct {
	Bill *entity.RecurringBill
}

// ReactivateBillUseCase handles turning a stopped bill back on.
type ReactivateBillUseCase struct {
	billRepo adapter.RecurringBillRepository
}

// NewReactivateBillUseCase creates a new ReactivateBillUseCase instance.
func NewReactivateBillUseCase(billRepo adapter.RecurringBillRepository) *ReactivateBillUseCase {
	return &ReactivateBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill reactivation. The anchor date is left untouched:
// interval rules resume on their original cadence, not from the reactivation
// date.
func (uc *ReactivateBillUseCase) Execute(ctx context.Context, input ReactivateBillInput) (*ReactivateBillOutput, error) {
	bill, err := findOwnedBill(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	if bill.Active {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRuleNotStopped,
			"bill is not stopped",
			domainerror.ErrRuleNotStopped,
		)
	}

	bill.Reactivate(time.Now().UTC())

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to reactivate bill: %w", err)
	}

	return &ReactivateBillOutput{Bill: bill}, nil
}
