// Package error defines domain-specific errors for the Cashflowd application.
package error

import "errors"

// Cashflow timeline and persisted event domain errors.
var (
	// ErrInvalidWindow is returned when windowStart is after windowEnd.
	ErrInvalidWindow = errors.New("window start must not be after window end")

	// ErrInvalidLookahead is returned when the projection look-ahead is negative.
	ErrInvalidLookahead = errors.New("look-ahead days must not be negative")

	// ErrEventNotFound is returned when a persisted event is not found.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidEventID is returned when an event identifier is malformed.
	ErrInvalidEventID = errors.New("invalid event identifier")

	// ErrInvalidEventAmount is returned when an event amount is zero.
	ErrInvalidEventAmount = errors.New("event amount must not be zero")
)

// CashflowErrorCode defines error codes for cashflow errors.
// Format: CFL-XXYYYY where XX is category and YYYY is specific error.
type CashflowErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWindow      CashflowErrorCode = "CFL-010001"
	ErrCodeInvalidLookahead   CashflowErrorCode = "CFL-010002"
	ErrCodeInvalidEventID     CashflowErrorCode = "CFL-010003"
	ErrCodeInvalidEventAmount CashflowErrorCode = "CFL-010004"
	ErrCodeMissingEventFields CashflowErrorCode = "CFL-010005"

	// Lookup errors (02XXXX)
	ErrCodeEventNotFound CashflowErrorCode = "CFL-020001"
)

// CashflowError represents a cashflow error with code and message.
type CashflowError struct {
	Code    CashflowErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CashflowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CashflowError) Unwrap() error {
	return e.Err
}

// NewCashflowError creates a new CashflowError with the given code and message.
func NewCashflowError(code CashflowErrorCode, message string, err error) *CashflowError {
	return &CashflowError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
