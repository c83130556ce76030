package cashflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
)

func summaryEvent(eventType entity.EventType, amount string, day time.Time) *entity.CashflowEvent {
	return &entity.CashflowEvent{
		Name:      "event",
		Amount:    decimal.RequireFromString(amount),
		EventDate: day,
		EventType: eventType,
	}
}

func TestSummarize_Totals(t *testing.T) {
	timeline := []*entity.CashflowEvent{
		summaryEvent(entity.EventTypeExpense, "-1200.00", date(2025, time.March, 1)),
		summaryEvent(entity.EventTypeIncome, "3000.00", date(2025, time.March, 15)),
		summaryEvent(entity.EventTypeExpense, "-84.50", date(2025, time.March, 20)),
	}

	s := Summarize(timeline, date(2025, time.March, 1), date(2025, time.March, 31))

	if !s.TotalIncome.Equal(decimal.RequireFromString("3000.00")) {
		t.Errorf("expected total income 3000.00, got %s", s.TotalIncome)
	}
	if !s.TotalExpense.Equal(decimal.RequireFromString("1284.50")) {
		t.Errorf("expected total expense 1284.50, got %s", s.TotalExpense)
	}
	if !s.Net.Equal(decimal.RequireFromString("1715.50")) {
		t.Errorf("expected net 1715.50, got %s", s.Net)
	}
	if s.CountIncome != 1 || s.CountExpense != 2 {
		t.Errorf("expected counts 1/2, got %d/%d", s.CountIncome, s.CountExpense)
	}
}

func TestSummarize_Conservation(t *testing.T) {
	// totalIncome - totalExpense must equal net exactly, including with
	// amounts that exercise rounding.
	timeline := []*entity.CashflowEvent{
		summaryEvent(entity.EventTypeIncome, "10.005", date(2025, time.March, 1)),
		summaryEvent(entity.EventTypeIncome, "0.995", date(2025, time.March, 2)),
		summaryEvent(entity.EventTypeExpense, "-3.335", date(2025, time.March, 3)),
	}

	s := Summarize(timeline, date(2025, time.March, 1), date(2025, time.March, 31))

	if !s.TotalIncome.Sub(s.TotalExpense).Equal(s.Net) {
		t.Errorf("conservation violated: %s - %s != %s", s.TotalIncome, s.TotalExpense, s.Net)
	}
}

func TestSummarize_RoundingHalfUp(t *testing.T) {
	timeline := []*entity.CashflowEvent{
		summaryEvent(entity.EventTypeIncome, "10.005", date(2025, time.March, 1)),
	}

	s := Summarize(timeline, date(2025, time.March, 1), date(2025, time.March, 31))

	// Half-up, never truncated: 10.005 rounds to 10.01, not 10.00.
	if !s.TotalIncome.Equal(decimal.RequireFromString("10.01")) {
		t.Errorf("expected 10.01, got %s", s.TotalIncome)
	}
}

func TestSummarize_Averages(t *testing.T) {
	t.Run("multi-month window divides by months spanned", func(t *testing.T) {
		timeline := []*entity.CashflowEvent{
			summaryEvent(entity.EventTypeIncome, "3000.00", date(2025, time.January, 15)),
			summaryEvent(entity.EventTypeIncome, "3000.00", date(2025, time.February, 15)),
			summaryEvent(entity.EventTypeIncome, "3000.00", date(2025, time.March, 15)),
		}

		s := Summarize(timeline, date(2025, time.January, 1), date(2025, time.March, 31))
		if !s.AverageIncome.Equal(decimal.RequireFromString("3000.00")) {
			t.Errorf("expected average income 3000.00 over 3 months, got %s", s.AverageIncome)
		}
	})

	t.Run("sub-month window divides by 1", func(t *testing.T) {
		timeline := []*entity.CashflowEvent{
			summaryEvent(entity.EventTypeExpense, "-500.00", date(2025, time.March, 5)),
		}

		s := Summarize(timeline, date(2025, time.March, 1), date(2025, time.March, 10))
		if !s.AverageExpense.Equal(decimal.RequireFromString("500.00")) {
			t.Errorf("expected average expense 500.00 with divisor 1, got %s", s.AverageExpense)
		}
	})
}

func TestSummarize_EmptyTimeline(t *testing.T) {
	s := Summarize(nil, date(2025, time.March, 1), date(2025, time.March, 31))

	if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Net.IsZero() {
		t.Errorf("expected all-zero summary, got income=%s expense=%s net=%s",
			s.TotalIncome, s.TotalExpense, s.Net)
	}
}

func TestWholeMonthsSpanned(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"full calendar month", date(2025, time.January, 1), date(2025, time.January, 31), 1},
		{"three full months", date(2025, time.January, 1), date(2025, time.March, 31), 3},
		{"mid-month to mid-month", date(2025, time.January, 15), date(2025, time.February, 14), 1},
		{"ten days clamps to one", date(2025, time.January, 1), date(2025, time.January, 10), 1},
		{"single day clamps to one", date(2025, time.January, 1), date(2025, time.January, 1), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wholeMonthsSpanned(tc.start, tc.end); got != tc.want {
				t.Errorf("expected %d months, got %d", tc.want, got)
			}
		})
	}
}
