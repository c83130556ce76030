// Package cashflow contains the cashflow projection, merge and summary logic.
package cashflow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// currencyPlaces is the rounding precision for all monetary outputs.
const currencyPlaces = 2

// Summarize reduces a merged timeline to income/expense/net totals plus
// per-month averages over the requested window.
//
// Totals are rounded half-up to currency precision, never truncated, and net
// is computed from the rounded totals so totalIncome - totalExpense == net
// exactly. Averages divide by the number of whole months spanned by the
// window, with a minimum divisor of 1 for sub-month windows.
func Summarize(timeline []*entity.CashflowEvent, windowStart, windowEnd time.Time) entity.CashflowSummary {
	income := decimal.Zero
	expense := decimal.Zero
	countIncome := 0
	countExpense := 0

	for _, e := range timeline {
		switch e.EventType {
		case entity.EventTypeIncome:
			income = income.Add(e.Amount)
			countIncome++
		case entity.EventTypeExpense:
			expense = expense.Add(e.Amount.Abs())
			countExpense++
		}
	}

	// shopspring's Round is round-half-away-from-zero, which for the
	// non-negative totals here is exactly round-half-up.
	income = income.Round(currencyPlaces)
	expense = expense.Round(currencyPlaces)

	months := decimal.NewFromInt(int64(wholeMonthsSpanned(windowStart, windowEnd)))

	return entity.CashflowSummary{
		TotalIncome:    income,
		TotalExpense:   expense,
		Net:            income.Sub(expense),
		AverageIncome:  income.Div(months).Round(currencyPlaces),
		AverageExpense: expense.Div(months).Round(currencyPlaces),
		CountIncome:    countIncome,
		CountExpense:   countExpense,
	}
}

// wholeMonthsSpanned counts the whole calendar months that fit inside
// [start, end] inclusive, never returning less than 1. A full calendar month
// window (the 1st through the last day) counts as exactly one month.
func wholeMonthsSpanned(start, end time.Time) int {
	start = midnightUTC(start)
	boundary := midnightUTC(end).AddDate(0, 0, 1)

	months := 0
	cursor := start.AddDate(0, 1, 0)
	for !cursor.After(boundary) {
		months++
		cursor = cursor.AddDate(0, 1, 0)
	}
	if months < 1 {
		return 1
	}
	return months
}
