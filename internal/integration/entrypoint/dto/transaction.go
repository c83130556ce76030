package dto

import (
	"time"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for posting a
// transaction. The amount is a signed decimal string: negative for an
// expense, positive for income.
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	PostedAt    string  `json:"posted_at" binding:"required"`
	AccountID   *string `json:"account_id,omitempty"`
}

// TransactionResponse represents a posted transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	PostedAt    string    `json:"posted_at"`
	AccountID   *string   `json:"account_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction to its wire form.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	var accountID *string
	if txn.AccountID != nil {
		s := txn.AccountID.String()
		accountID = &s
	}

	return TransactionResponse{
		ID:          txn.ID.String(),
		Description: txn.Description,
		Amount:      txn.Amount.StringFixed(2),
		PostedAt:    txn.PostedAt.Format("2006-01-02"),
		AccountID:   accountID,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to wire form.
func ToTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, ToTransactionResponse(txn))
	}
	return TransactionListResponse{Transactions: responses}
}
