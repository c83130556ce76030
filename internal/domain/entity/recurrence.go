// Package entity defines the core business entities for the domain layer.
package entity

// Recurrence represents the interval between successive occurrences of a
// recurring rule. It is a closed set: the projector matches on it exhaustively
// and an unrecognized value is a validation error, never a silent default.
type Recurrence string

const (
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceWeekly   Recurrence = "weekly"
)

// IsValid reports whether the recurrence is one of the supported intervals.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceMonthly, RecurrenceBiweekly, RecurrenceWeekly:
		return true
	}
	return false
}
