// Package cashflow contains the cashflow projection, merge and summary logic.
package cashflow

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// Rule is the projector's neutral view of a recurring bill or income.
type Rule struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Kind       entity.EventSourceKind
	Name       string
	Amount     decimal.Decimal // Always positive
	Day        int             // Day of month (1-31)
	Recurrence entity.Recurrence
	Anchor     time.Time // First occurrence date, fixed at rule creation
	Active     bool
	Deleted    bool
}

// RuleFromBill adapts a recurring bill for projection.
func RuleFromBill(b *entity.RecurringBill) Rule {
	return Rule{
		ID:         b.ID,
		UserID:     b.UserID,
		Kind:       entity.EventSourceBill,
		Name:       b.Name,
		Amount:     b.Amount,
		Day:        b.DueDay,
		Recurrence: b.Recurrence,
		Anchor:     b.AnchorDate,
		Active:     b.Active,
		Deleted:    b.DeletedAt != nil,
	}
}

// RuleFromIncome adapts a recurring income for projection.
func RuleFromIncome(i *entity.RecurringIncome) Rule {
	return Rule{
		ID:         i.ID,
		UserID:     i.UserID,
		Kind:       entity.EventSourceIncome,
		Name:       i.Name,
		Amount:     i.Amount,
		Day:        i.ReceiveDay,
		Recurrence: i.Recurrence,
		Anchor:     i.AnchorDate,
		Active:     i.Active,
		Deleted:    i.DeletedAt != nil,
	}
}

// ProjectOccurrences expands a rule into its concrete occurrence dates within
// [windowStart, windowEnd] inclusive. It is a pure function of rule and
// window: identical inputs always yield identical output, results are
// strictly date-ascending with no duplicates, and every event carries
// Processed=false. Inactive or soft-deleted rules yield an empty sequence; an
// unrecognized recurrence is an error, never a fallback.
//
// Monthly rules step calendar months preserving the target day, clamped to
// the last day of short months (day 31 occurs on Feb 28, Apr 30, and so on).
// Biweekly and weekly rules step 14 and 7 days from the rule's anchor date,
// so overlapping windows always agree on occurrence dates.
func ProjectOccurrences(rule Rule, windowStart, windowEnd time.Time) ([]*entity.CashflowEvent, error) {
	if windowStart.After(windowEnd) {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidWindow,
			"window start must not be after window end",
			domainerror.ErrInvalidWindow,
		)
	}
	if !rule.Active || rule.Deleted {
		return nil, nil
	}

	start := midnightUTC(windowStart)
	end := midnightUTC(windowEnd)
	anchor := midnightUTC(rule.Anchor)

	// A rule produces nothing before its first occurrence.
	if anchor.After(start) {
		start = anchor
	}
	if start.After(end) {
		return nil, nil
	}

	var dates []time.Time
	switch rule.Recurrence {
	case entity.RecurrenceMonthly:
		dates = monthlyOccurrences(rule.Day, start, end)
	case entity.RecurrenceBiweekly:
		dates = intervalOccurrences(anchor, 14, start, end)
	case entity.RecurrenceWeekly:
		dates = intervalOccurrences(anchor, 7, start, end)
	default:
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurrence,
			"unrecognized recurrence interval: "+string(rule.Recurrence),
			domainerror.ErrInvalidRecurrence,
		)
	}

	events := make([]*entity.CashflowEvent, 0, len(dates))
	for _, d := range dates {
		events = append(events, ruleEvent(rule, d))
	}
	return events, nil
}

// monthlyOccurrences returns every clamped day-of-month occurrence within
// [start, end]. The month cursor advances on the nominal (year, month) pair,
// not the clamped date, so a day-31 rule returns to the 31st after February.
func monthlyOccurrences(day int, start, end time.Time) []time.Time {
	year, month := start.Year(), start.Month()

	occ := entity.ClampToMonth(year, month, day)
	if occ.Before(start) {
		year, month = nextMonth(year, month)
		occ = entity.ClampToMonth(year, month, day)
	}

	var dates []time.Time
	for !occ.After(end) {
		dates = append(dates, occ)
		year, month = nextMonth(year, month)
		occ = entity.ClampToMonth(year, month, day)
	}
	return dates
}

// intervalOccurrences returns every stepDays-spaced occurrence within
// [start, end], anchored at the rule's fixed epoch.
func intervalOccurrences(anchor time.Time, stepDays int, start, end time.Time) []time.Time {
	occ := anchor
	if start.After(anchor) {
		elapsed := int(start.Sub(anchor).Hours() / 24)
		steps := elapsed / stepDays
		if elapsed%stepDays != 0 {
			steps++
		}
		occ = anchor.AddDate(0, 0, steps*stepDays)
	}

	var dates []time.Time
	for !occ.After(end) {
		dates = append(dates, occ)
		occ = occ.AddDate(0, 0, stepDays)
	}
	return dates
}

// ruleEvent builds the synthetic event for one occurrence of a rule. Bills
// carry negative amounts, incomes positive.
func ruleEvent(rule Rule, date time.Time) *entity.CashflowEvent {
	amount := rule.Amount
	eventType := entity.EventTypeIncome
	if rule.Kind == entity.EventSourceBill {
		amount = amount.Neg()
		eventType = entity.EventTypeExpense
	}

	ruleID := rule.ID
	return &entity.CashflowEvent{
		UserID:     rule.UserID,
		SourceKind: rule.Kind,
		SourceID:   &ruleID,
		Name:       rule.Name,
		Amount:     amount,
		EventDate:  date,
		EventType:  eventType,
		Processed:  false,
	}
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
