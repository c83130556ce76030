// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
)

// ListBillsInput represents the input for listing bills.
type ListBillsInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Bills []*entity.RecurringBill
}

// ListBillsUseCase handles bill listing logic.
type ListBillsUseCase struct {
	billRepo adapter.RecurringBillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.RecurringBillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill listing. Stopped bills are included unless
// ActiveOnly is set; soft-deleted bills never are.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	var (
		bills []*entity.RecurringBill
		err   error
	)
	if input.ActiveOnly {
		bills, err = uc.billRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		bills, err = uc.billRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return &ListBillsOutput{Bills: bills}, nil
}
