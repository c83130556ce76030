// Package error defines domain-specific errors for the Cashflowd application.
package error

import "errors"

// Recurring rule domain errors, shared by bills and incomes.
var (
	// ErrBillNotFound is returned when a recurring bill is not found.
	ErrBillNotFound = errors.New("bill not found")

	// ErrIncomeNotFound is returned when a recurring income is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrInvalidRuleAmount is returned when a rule amount is zero or negative.
	ErrInvalidRuleAmount = errors.New("amount must be greater than zero")

	// ErrInvalidDueDay is returned when a due or receive day falls outside 1-31.
	ErrInvalidDueDay = errors.New("day must be between 1 and 31")

	// ErrInvalidRecurrence is returned for an unrecognized recurrence interval.
	ErrInvalidRecurrence = errors.New("invalid recurrence interval")

	// ErrRuleAlreadyStopped is returned when stopping an already stopped rule.
	ErrRuleAlreadyStopped = errors.New("rule is already stopped")

	// ErrRuleNotStopped is returned when reactivating a rule that is active.
	ErrRuleNotStopped = errors.New("rule is not stopped")

	// ErrRuleCategoryNotFound is returned when a bill references a missing category.
	ErrRuleCategoryNotFound = errors.New("category not found")
)

// RecurringErrorCode defines error codes for recurring rule errors.
// Format: RCR-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRuleAmount    RecurringErrorCode = "RCR-010001"
	ErrCodeInvalidDueDay        RecurringErrorCode = "RCR-010002"
	ErrCodeInvalidRecurrence    RecurringErrorCode = "RCR-010003"
	ErrCodeMissingRuleFields    RecurringErrorCode = "RCR-010004"
	ErrCodeRuleCategoryNotFound RecurringErrorCode = "RCR-010005"

	// Lookup errors (02XXXX)
	ErrCodeBillNotFound   RecurringErrorCode = "RCR-020001"
	ErrCodeIncomeNotFound RecurringErrorCode = "RCR-020002"

	// Lifecycle errors (03XXXX)
	ErrCodeRuleAlreadyStopped RecurringErrorCode = "RCR-030001"
	ErrCodeRuleNotStopped     RecurringErrorCode = "RCR-030002"
)

// RecurringError represents a recurring rule error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
