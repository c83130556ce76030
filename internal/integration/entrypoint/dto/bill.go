package dto

import (
	"time"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for bill creation. The
// amount is a positive decimal string; the projector applies the expense sign.
type CreateBillRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Amount     string  `json:"amount" binding:"required"`
	DueDay     int     `json:"due_day" binding:"required,min=1,max=31"`
	Recurrence string  `json:"recurrence" binding:"required,oneof=monthly biweekly weekly"`
	CategoryID *string `json:"category_id,omitempty"`
	AccountID  *string `json:"account_id,omitempty"`
}

// UpdateBillRequest represents the request body for bill update.
type UpdateBillRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount        *string `json:"amount,omitempty"`
	DueDay        *int    `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	Recurrence    *string `json:"recurrence,omitempty" binding:"omitempty,oneof=monthly biweekly weekly"`
	CategoryID    *string `json:"category_id,omitempty"`
	ClearCategory bool    `json:"clear_category,omitempty"`
	AccountID     *string `json:"account_id,omitempty"`
}

// BillResponse represents a recurring bill in API responses.
type BillResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Amount     string     `json:"amount"`
	DueDay     int        `json:"due_day"`
	Recurrence string     `json:"recurrence"`
	AnchorDate string     `json:"anchor_date"`
	CategoryID *string    `json:"category_id,omitempty"`
	AccountID  *string    `json:"account_id,omitempty"`
	Active     bool       `json:"active"`
	StoppedAt  *time.Time `json:"stopped_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BillListResponse represents the response for bill listing.
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain RecurringBill to a BillResponse DTO.
func ToBillResponse(bill *entity.RecurringBill) BillResponse {
	var categoryID, accountID *string
	if bill.CategoryID != nil {
		s := bill.CategoryID.String()
		categoryID = &s
	}
	if bill.AccountID != nil {
		s := bill.AccountID.String()
		accountID = &s
	}

	return BillResponse{
		ID:         bill.ID.String(),
		Name:       bill.Name,
		Amount:     bill.Amount.StringFixed(2),
		DueDay:     bill.DueDay,
		Recurrence: string(bill.Recurrence),
		AnchorDate: bill.AnchorDate.Format("2006-01-02"),
		CategoryID: categoryID,
		AccountID:  accountID,
		Active:     bill.Active,
		StoppedAt:  bill.StoppedAt,
		CreatedAt:  bill.CreatedAt,
		UpdatedAt:  bill.UpdatedAt,
	}
}

// ToBillListResponse converts a slice of bills to a BillListResponse DTO.
func ToBillListResponse(bills []*entity.RecurringBill) BillListResponse {
	responses := make([]BillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, ToBillResponse(bill))
	}
	return BillListResponse{Bills: responses}
}
