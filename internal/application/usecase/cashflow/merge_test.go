package cashflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
)

func projectedEvent(ruleID uuid.UUID, kind entity.EventSourceKind, name string, amount string, day time.Time) *entity.CashflowEvent {
	eventType := entity.EventTypeIncome
	if kind == entity.EventSourceBill {
		eventType = entity.EventTypeExpense
	}
	return &entity.CashflowEvent{
		SourceKind: kind,
		SourceID:   &ruleID,
		Name:       name,
		Amount:     decimal.RequireFromString(amount),
		EventDate:  day,
		EventType:  eventType,
	}
}

func overrideEvent(ruleID uuid.UUID, kind entity.EventSourceKind, name string, amount string, day time.Time) *entity.CashflowEvent {
	e := projectedEvent(ruleID, kind, name, amount, day)
	e.ID = uuid.New()
	return e
}

func actualEvent(txID uuid.UUID, name string, amount string, day time.Time) *entity.CashflowEvent {
	eventType := entity.EventTypeIncome
	a := decimal.RequireFromString(amount)
	if a.IsNegative() {
		eventType = entity.EventTypeExpense
	}
	return &entity.CashflowEvent{
		SourceKind: entity.EventSourceTransaction,
		SourceID:   &txID,
		Name:       name,
		Amount:     a,
		EventDate:  day,
		EventType:  eventType,
		Processed:  true,
	}
}

func TestMergeTimeline_OverridePrecedence(t *testing.T) {
	ruleID := uuid.New()
	day := date(2025, time.March, 1)

	projected := []*entity.CashflowEvent{
		projectedEvent(ruleID, entity.EventSourceBill, "Rent", "-1200.00", day),
	}
	overrides := []*entity.CashflowEvent{
		overrideEvent(ruleID, entity.EventSourceBill, "Rent", "-1500.00", day),
	}

	merged := MergeTimeline(projected, nil, overrides)
	if len(merged) != 1 {
		t.Fatalf("expected exactly 1 event for the slot, got %d", len(merged))
	}
	if !merged[0].Amount.Equal(decimal.RequireFromString("-1500.00")) {
		t.Errorf("expected override amount -1500.00, got %s", merged[0].Amount)
	}
	if !merged[0].Persisted() {
		t.Error("expected the override row, not the projected event")
	}
}

func TestMergeTimeline_SuppressedOccurrenceVanishes(t *testing.T) {
	ruleID := uuid.New()
	day := date(2025, time.March, 1)

	projected := []*entity.CashflowEvent{
		projectedEvent(ruleID, entity.EventSourceBill, "Gym", "-45.00", day),
		projectedEvent(ruleID, entity.EventSourceBill, "Gym", "-45.00", date(2025, time.April, 1)),
	}
	suppressed := overrideEvent(ruleID, entity.EventSourceBill, "Gym", "-45.00", day)
	suppressed.Suppressed = true

	merged := MergeTimeline(projected, nil, []*entity.CashflowEvent{suppressed})
	if len(merged) != 1 {
		t.Fatalf("expected 1 event after suppression, got %d", len(merged))
	}
	if !merged[0].EventDate.Equal(date(2025, time.April, 1)) {
		t.Errorf("wrong occurrence suppressed: remaining event on %s", merged[0].EventDate.Format("2006-01-02"))
	}
}

func TestMergeTimeline_ActualAndProjectedCoincidence(t *testing.T) {
	// An actual event and a projected event for an unrelated rule landing
	// on the same date both survive; coincidence is not deduplicated.
	ruleID := uuid.New()
	day := date(2025, time.March, 15)

	projected := []*entity.CashflowEvent{
		projectedEvent(ruleID, entity.EventSourceIncome, "Salary", "3000.00", day),
	}
	actual := []*entity.CashflowEvent{
		actualEvent(uuid.New(), "Refund", "3000.00", day),
	}

	merged := MergeTimeline(projected, actual, nil)
	if len(merged) != 2 {
		t.Fatalf("expected both coinciding events, got %d", len(merged))
	}
	// Deterministic tie-break: the actual event sorts first.
	if !merged[0].Processed {
		t.Error("expected the actual event first on equal dates")
	}
}

func TestMergeTimeline_OneOffAndOrphanOverrides(t *testing.T) {
	t.Run("one-off persisted event appears", func(t *testing.T) {
		oneOff := &entity.CashflowEvent{
			ID:        uuid.New(),
			Name:      "Car repair",
			Amount:    decimal.RequireFromString("-300.00"),
			EventDate: date(2025, time.March, 20),
			EventType: entity.EventTypeExpense,
		}

		merged := MergeTimeline(nil, nil, []*entity.CashflowEvent{oneOff})
		if len(merged) != 1 {
			t.Fatalf("expected the one-off event, got %d events", len(merged))
		}
	})

	t.Run("orphaned override is honored as standalone event", func(t *testing.T) {
		// The parent rule no longer projects anything, but the override
		// row survives and must not be dropped.
		orphan := overrideEvent(uuid.New(), entity.EventSourceBill, "Old bill", "-80.00", date(2025, time.March, 5))

		merged := MergeTimeline(nil, nil, []*entity.CashflowEvent{orphan})
		if len(merged) != 1 {
			t.Fatalf("expected the orphaned override, got %d events", len(merged))
		}
	})

	t.Run("suppressed orphan stays hidden", func(t *testing.T) {
		orphan := overrideEvent(uuid.New(), entity.EventSourceBill, "Old bill", "-80.00", date(2025, time.March, 5))
		orphan.Suppressed = true

		merged := MergeTimeline(nil, nil, []*entity.CashflowEvent{orphan})
		if len(merged) != 0 {
			t.Fatalf("expected no events, got %d", len(merged))
		}
	})
}

func TestMergeTimeline_ActualCosmeticRename(t *testing.T) {
	txID := uuid.New()
	day := date(2025, time.March, 10)

	actual := []*entity.CashflowEvent{
		actualEvent(txID, "CARD PAYMENT 4421", "-59.99", day),
	}
	rename := overrideEvent(txID, entity.EventSourceTransaction, "Internet bill", "-999.00", day)

	merged := MergeTimeline(nil, actual, []*entity.CashflowEvent{rename})
	if len(merged) != 1 {
		t.Fatalf("expected exactly 1 event for the transaction slot, got %d", len(merged))
	}
	if merged[0].Name != "Internet bill" {
		t.Errorf("expected renamed event, got %q", merged[0].Name)
	}
	// The posted amount always wins over the override's.
	if !merged[0].Amount.Equal(decimal.RequireFromString("-59.99")) {
		t.Errorf("expected posted amount -59.99, got %s", merged[0].Amount)
	}
	if !merged[0].Processed {
		t.Error("renamed actual event must stay processed")
	}
}

func TestMergeTimeline_ChronologicalOrder(t *testing.T) {
	billID, incomeID := uuid.New(), uuid.New()

	projected := []*entity.CashflowEvent{
		projectedEvent(billID, entity.EventSourceBill, "Rent", "-1200.00", date(2025, time.March, 28)),
		projectedEvent(incomeID, entity.EventSourceIncome, "Salary", "3000.00", date(2025, time.March, 1)),
	}
	actual := []*entity.CashflowEvent{
		actualEvent(uuid.New(), "Groceries", "-84.12", date(2025, time.March, 14)),
	}

	merged := MergeTimeline(projected, actual, nil)
	for i := 1; i < len(merged); i++ {
		if merged[i].EventDate.Before(merged[i-1].EventDate) {
			t.Fatalf("timeline out of order at index %d", i)
		}
	}
}
