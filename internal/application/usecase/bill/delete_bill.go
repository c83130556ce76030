// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
)

// DeleteBillInput represents the input for bill deletion.
type DeleteBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// DeleteBillOutput represents the output of bill deletion.
type DeleteBillOutput struct {
	Success bool
}

// DeleteBillUseCase handles bill deletion. Deletion is a soft delete and
// removes the bill from every future timeline, unlike stopping, which keeps
// the bill listed for later reactivation.
type DeleteBillUseCase struct {
	billRepo adapter.RecurringBillRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.RecurringBillRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) (*DeleteBillOutput, error) {
	bill, err := findOwnedBill(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.billRepo.Delete(ctx, bill.ID); err != nil {
		return nil, fmt.Errorf("failed to delete bill: %w", err)
	}

	return &DeleteBillOutput{Success: true}, nil
}
