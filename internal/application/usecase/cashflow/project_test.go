package cashflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRule(kind entity.EventSourceKind, day int, recurrence entity.Recurrence, anchor time.Time) Rule {
	return Rule{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Kind:       kind,
		Name:       "test rule",
		Amount:     decimal.RequireFromString("100.00"),
		Day:        day,
		Recurrence: recurrence,
		Anchor:     anchor,
		Active:     true,
	}
}

func occurrenceDates(t *testing.T, rule Rule, start, end time.Time) []time.Time {
	t.Helper()
	events, err := ProjectOccurrences(rule, start, end)
	if err != nil {
		t.Fatalf("unexpected projection error: %v", err)
	}
	dates := make([]time.Time, len(events))
	for i, e := range events {
		dates[i] = e.EventDate
	}
	return dates
}

func TestProjectOccurrences_MonthlyClamping(t *testing.T) {
	// A day-31 rule across Jan-Apr of a non-leap year clamps to each
	// month's last day and returns to the 31st afterwards.
	rule := testRule(entity.EventSourceBill, 31, entity.RecurrenceMonthly, date(2025, time.January, 1))

	got := occurrenceDates(t, rule, date(2025, time.January, 1), date(2025, time.April, 30))
	want := []time.Time{
		date(2025, time.January, 31),
		date(2025, time.February, 28),
		date(2025, time.March, 31),
		date(2025, time.April, 30),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d: expected %s, got %s", i, want[i].Format("2006-01-02"), got[i].Format("2006-01-02"))
		}
	}
}

func TestProjectOccurrences_MonthlyLeapFebruary(t *testing.T) {
	rule := testRule(entity.EventSourceBill, 30, entity.RecurrenceMonthly, date(2024, time.January, 1))

	got := occurrenceDates(t, rule, date(2024, time.February, 1), date(2024, time.February, 29))
	if len(got) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(got))
	}
	if !got[0].Equal(date(2024, time.February, 29)) {
		t.Errorf("expected Feb 29, got %s", got[0].Format("2006-01-02"))
	}
}

func TestProjectOccurrences_BiweeklySpacing(t *testing.T) {
	anchor := date(2025, time.January, 3)
	rule := testRule(entity.EventSourceIncome, 3, entity.RecurrenceBiweekly, anchor)

	got := occurrenceDates(t, rule, date(2025, time.January, 1), date(2025, time.March, 31))
	if len(got) == 0 {
		t.Fatal("expected occurrences, got none")
	}
	if !got[0].Equal(anchor) {
		t.Errorf("expected first occurrence on anchor %s, got %s", anchor.Format("2006-01-02"), got[0].Format("2006-01-02"))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sub(got[i-1]) != 14*24*time.Hour {
			t.Errorf("occurrences %d and %d are %.0f hours apart, expected 336",
				i-1, i, got[i].Sub(got[i-1]).Hours())
		}
	}
}

func TestProjectOccurrences_BiweeklyAnchorStableAcrossWindows(t *testing.T) {
	// Two overlapping windows must agree on occurrence dates in the
	// overlap region: the anchor is the rule's fixed epoch, not the
	// window start.
	anchor := date(2025, time.January, 3)
	rule := testRule(entity.EventSourceIncome, 3, entity.RecurrenceBiweekly, anchor)

	first := occurrenceDates(t, rule, date(2025, time.January, 1), date(2025, time.February, 28))
	second := occurrenceDates(t, rule, date(2025, time.January, 10), date(2025, time.February, 28))

	overlap := make(map[string]bool)
	for _, d := range first {
		if !d.Before(date(2025, time.January, 10)) {
			overlap[d.Format("2006-01-02")] = true
		}
	}

	if len(second) != len(overlap) {
		t.Fatalf("expected %d occurrences in shifted window, got %d", len(overlap), len(second))
	}
	for _, d := range second {
		if !overlap[d.Format("2006-01-02")] {
			t.Errorf("occurrence %s drifted: not produced by the wider window", d.Format("2006-01-02"))
		}
	}
}

func TestProjectOccurrences_WeeklySpacing(t *testing.T) {
	anchor := date(2025, time.June, 2)
	rule := testRule(entity.EventSourceBill, 2, entity.RecurrenceWeekly, anchor)

	got := occurrenceDates(t, rule, date(2025, time.June, 1), date(2025, time.June, 30))
	want := []time.Time{
		date(2025, time.June, 2),
		date(2025, time.June, 9),
		date(2025, time.June, 16),
		date(2025, time.June, 23),
		date(2025, time.June, 30),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d: expected %s, got %s", i, want[i].Format("2006-01-02"), got[i].Format("2006-01-02"))
		}
	}
}

func TestProjectOccurrences_Idempotent(t *testing.T) {
	rule := testRule(entity.EventSourceBill, 15, entity.RecurrenceMonthly, date(2025, time.January, 15))
	start, end := date(2025, time.January, 1), date(2025, time.June, 30)

	first := occurrenceDates(t, rule, start, end)
	second := occurrenceDates(t, rule, start, end)

	if len(first) != len(second) {
		t.Fatalf("two identical calls produced %d and %d occurrences", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("occurrence %d differs between identical calls", i)
		}
	}
}

func TestProjectOccurrences_InactiveAndDeletedRules(t *testing.T) {
	t.Run("inactive rule yields empty sequence", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 1, entity.RecurrenceMonthly, date(2025, time.January, 1))
		rule.Active = false

		got := occurrenceDates(t, rule, date(2025, time.January, 1), date(2025, time.March, 31))
		if len(got) != 0 {
			t.Errorf("expected no occurrences for inactive rule, got %d", len(got))
		}
	})

	t.Run("soft-deleted rule yields empty sequence even when active", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 1, entity.RecurrenceMonthly, date(2025, time.January, 1))
		rule.Deleted = true

		got := occurrenceDates(t, rule, date(2025, time.January, 1), date(2025, time.March, 31))
		if len(got) != 0 {
			t.Errorf("expected no occurrences for deleted rule, got %d", len(got))
		}
	})
}

func TestProjectOccurrences_WindowEdges(t *testing.T) {
	t.Run("zero-length window matching an occurrence yields it", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 15, entity.RecurrenceMonthly, date(2025, time.January, 15))

		got := occurrenceDates(t, rule, date(2025, time.March, 15), date(2025, time.March, 15))
		if len(got) != 1 {
			t.Fatalf("expected exactly 1 occurrence, got %d", len(got))
		}
	})

	t.Run("zero-length window missing the occurrence yields nothing", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 15, entity.RecurrenceMonthly, date(2025, time.January, 15))

		got := occurrenceDates(t, rule, date(2025, time.March, 14), date(2025, time.March, 14))
		if len(got) != 0 {
			t.Errorf("expected no occurrences, got %d", len(got))
		}
	})

	t.Run("no occurrences before the anchor", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 10, entity.RecurrenceMonthly, date(2025, time.March, 10))

		got := occurrenceDates(t, rule, date(2025, time.January, 1), date(2025, time.April, 30))
		if len(got) != 2 {
			t.Fatalf("expected 2 occurrences (Mar, Apr), got %d", len(got))
		}
		if !got[0].Equal(date(2025, time.March, 10)) {
			t.Errorf("expected first occurrence on Mar 10, got %s", got[0].Format("2006-01-02"))
		}
	})

	t.Run("inverted window is an error", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 1, entity.RecurrenceMonthly, date(2025, time.January, 1))

		_, err := ProjectOccurrences(rule, date(2025, time.February, 1), date(2025, time.January, 1))
		if err == nil {
			t.Error("expected error for inverted window")
		}
	})
}

func TestProjectOccurrences_UnrecognizedRecurrence(t *testing.T) {
	rule := testRule(entity.EventSourceBill, 1, "quarterly", date(2025, time.January, 1))

	_, err := ProjectOccurrences(rule, date(2025, time.January, 1), date(2025, time.December, 31))
	if err == nil {
		t.Fatal("expected error for unrecognized recurrence, got nil")
	}
}

func TestProjectOccurrences_EventShape(t *testing.T) {
	t.Run("bill occurrences are negative expenses", func(t *testing.T) {
		rule := testRule(entity.EventSourceBill, 1, entity.RecurrenceMonthly, date(2025, time.January, 1))

		events, err := ProjectOccurrences(rule, date(2025, time.January, 1), date(2025, time.January, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}

		e := events[0]
		if e.EventType != entity.EventTypeExpense {
			t.Errorf("expected expense event, got %s", e.EventType)
		}
		if !e.Amount.Equal(decimal.RequireFromString("-100.00")) {
			t.Errorf("expected amount -100.00, got %s", e.Amount)
		}
		if e.Processed {
			t.Error("projected events must never be processed")
		}
		if e.SourceID == nil || *e.SourceID != rule.ID {
			t.Error("projected event must reference its rule")
		}
	})

	t.Run("income occurrences are positive", func(t *testing.T) {
		rule := testRule(entity.EventSourceIncome, 1, entity.RecurrenceMonthly, date(2025, time.January, 1))

		events, err := ProjectOccurrences(rule, date(2025, time.January, 1), date(2025, time.January, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].EventType != entity.EventTypeIncome {
			t.Errorf("expected income event, got %s", events[0].EventType)
		}
		if !events[0].Amount.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected amount 100.00, got %s", events[0].Amount)
		}
	})
}
