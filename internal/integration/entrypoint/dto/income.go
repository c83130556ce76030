package dto

import (
	"time"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation. The
// amount is a positive decimal string.
type CreateIncomeRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Amount     string  `json:"amount" binding:"required"`
	ReceiveDay int     `json:"receive_day" binding:"required,min=1,max=31"`
	Recurrence string  `json:"recurrence" binding:"required,oneof=monthly biweekly weekly"`
	AccountID  *string `json:"account_id,omitempty"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount     *string `json:"amount,omitempty"`
	ReceiveDay *int    `json:"receive_day,omitempty" binding:"omitempty,min=1,max=31"`
	Recurrence *string `json:"recurrence,omitempty" binding:"omitempty,oneof=monthly biweekly weekly"`
	AccountID  *string `json:"account_id,omitempty"`
}

// IncomeResponse represents a recurring income in API responses.
type IncomeResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Amount     string     `json:"amount"`
	ReceiveDay int        `json:"receive_day"`
	Recurrence string     `json:"recurrence"`
	AnchorDate string     `json:"anchor_date"`
	AccountID  *string    `json:"account_id,omitempty"`
	Active     bool       `json:"active"`
	StoppedAt  *time.Time `json:"stopped_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IncomeListResponse represents the response for income listing.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain RecurringIncome to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.RecurringIncome) IncomeResponse {
	var accountID *string
	if income.AccountID != nil {
		s := income.AccountID.String()
		accountID = &s
	}

	return IncomeResponse{
		ID:         income.ID.String(),
		Name:       income.Name,
		Amount:     income.Amount.StringFixed(2),
		ReceiveDay: income.ReceiveDay,
		Recurrence: string(income.Recurrence),
		AnchorDate: income.AnchorDate.Format("2006-01-02"),
		AccountID:  accountID,
		Active:     income.Active,
		StoppedAt:  income.StoppedAt,
		CreatedAt:  income.CreatedAt,
		UpdatedAt:  income.UpdatedAt,
	}
}

// ToIncomeListResponse converts a slice of incomes to an IncomeListResponse DTO.
func ToIncomeListResponse(incomes []*entity.RecurringIncome) IncomeListResponse {
	responses := make([]IncomeResponse, 0, len(incomes))
	for _, income := range incomes {
		responses = append(responses, ToIncomeResponse(income))
	}
	return IncomeListResponse{Incomes: responses}
}
