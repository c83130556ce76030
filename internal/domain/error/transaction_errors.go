// Package error defines domain-specific errors for the Cashflowd application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when a transaction amount is zero.
	ErrInvalidTransactionAmount = errors.New("transaction amount must not be zero")

	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a user already has a category with the same name.
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// TransactionErrorCode defines error codes for transaction and category errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TRX-010001"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TRX-010002"
	ErrCodeCategoryAlreadyExists    TransactionErrorCode = "TRX-010003"
	ErrCodeInvalidCategoryName      TransactionErrorCode = "TRX-010004"
	ErrCodeInvalidCategoryColor     TransactionErrorCode = "TRX-010005"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TRX-020001"
	ErrCodeCategoryNotFound    TransactionErrorCode = "TRX-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
