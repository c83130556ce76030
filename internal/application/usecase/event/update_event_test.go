package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

type fakeBillRepo struct {
	bill *entity.RecurringBill
}

func (f *fakeBillRepo) Create(context.Context, *entity.RecurringBill) error { return nil }
func (f *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	if f.bill != nil && f.bill.ID == id {
		return f.bill, nil
	}
	return nil, domainerror.ErrBillNotFound
}
func (f *fakeBillRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.RecurringBill, error) {
	return nil, nil
}
func (f *fakeBillRepo) FindActiveByUser(context.Context, uuid.UUID) ([]*entity.RecurringBill, error) {
	return nil, nil
}
func (f *fakeBillRepo) Update(context.Context, *entity.RecurringBill) error { return nil }
func (f *fakeBillRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (f *fakeBillRepo) LatestModification(context.Context, uuid.UUID) (time.Time, error) {
	return time.Time{}, nil
}

type fakeIncomeRepo struct{}

func (f *fakeIncomeRepo) Create(context.Context, *entity.RecurringIncome) error { return nil }
func (f *fakeIncomeRepo) FindByID(context.Context, uuid.UUID) (*entity.RecurringIncome, error) {
	return nil, domainerror.ErrIncomeNotFound
}
func (f *fakeIncomeRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.RecurringIncome, error) {
	return nil, nil
}
func (f *fakeIncomeRepo) FindActiveByUser(context.Context, uuid.UUID) ([]*entity.RecurringIncome, error) {
	return nil, nil
}
func (f *fakeIncomeRepo) Update(context.Context, *entity.RecurringIncome) error { return nil }
func (f *fakeIncomeRepo) Delete(context.Context, uuid.UUID) error               { return nil }
func (f *fakeIncomeRepo) LatestModification(context.Context, uuid.UUID) (time.Time, error) {
	return time.Time{}, nil
}

type fakeEventRepo struct {
	upserted *entity.CashflowEvent
	updated  *entity.CashflowEvent
	byID     map[uuid.UUID]*entity.CashflowEvent
}

func (f *fakeEventRepo) Create(context.Context, *entity.CashflowEvent) error { return nil }
func (f *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CashflowEvent, error) {
	if evt, ok := f.byID[id]; ok {
		return evt, nil
	}
	return nil, domainerror.ErrEventNotFound
}
func (f *fakeEventRepo) FindForWindow(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.CashflowEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) UpsertOverride(_ context.Context, evt *entity.CashflowEvent) error {
	f.upserted = evt
	return nil
}
func (f *fakeEventRepo) Update(_ context.Context, evt *entity.CashflowEvent) error {
	f.updated = evt
	return nil
}
func (f *fakeEventRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (f *fakeEventRepo) LatestModification(context.Context, uuid.UUID) (time.Time, error) {
	return time.Time{}, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeBill(userID uuid.UUID) *entity.RecurringBill {
	return &entity.RecurringBill{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Rent",
		Amount:     decimal.RequireFromString("1200.00"),
		DueDay:     1,
		Recurrence: entity.RecurrenceMonthly,
		AnchorDate: date(2025, time.January, 1),
		Active:     true,
	}
}

func TestUpdateEvent_OverridesProjectedOccurrence(t *testing.T) {
	userID := uuid.New()
	bill := activeBill(userID)
	eventRepo := &fakeEventRepo{}
	uc := NewUpdateEventUseCase(eventRepo, &fakeBillRepo{bill: bill}, &fakeIncomeRepo{})

	newAmount := decimal.RequireFromString("-1500.00")
	out, err := uc.Execute(context.Background(), UpdateEventInput{
		UserID: userID,
		Slot: &ProjectedSlot{
			SourceKind: entity.EventSourceBill,
			SourceID:   bill.ID,
			Date:       date(2025, time.March, 1),
		},
		Amount: &newAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if eventRepo.upserted == nil {
		t.Fatal("expected an override row to be upserted")
	}
	if !out.Event.Amount.Equal(newAmount) {
		t.Errorf("expected amount -1500.00, got %s", out.Event.Amount)
	}
	if out.Event.Name != "Rent" {
		t.Errorf("expected name carried from the occurrence, got %q", out.Event.Name)
	}
	if out.Event.SourceID == nil || *out.Event.SourceID != bill.ID {
		t.Error("expected the override to reference the bill")
	}
	if !out.Event.EventDate.Equal(date(2025, time.March, 1)) {
		t.Errorf("expected event date 2025-03-01, got %s", out.Event.EventDate.Format("2006-01-02"))
	}
}

func TestUpdateEvent_RejectsSlotWithoutOccurrence(t *testing.T) {
	userID := uuid.New()
	bill := activeBill(userID) // due on the 1st; the 10th holds nothing
	uc := NewUpdateEventUseCase(&fakeEventRepo{}, &fakeBillRepo{bill: bill}, &fakeIncomeRepo{})

	name := "Rent (moved)"
	_, err := uc.Execute(context.Background(), UpdateEventInput{
		UserID: userID,
		Slot: &ProjectedSlot{
			SourceKind: entity.EventSourceBill,
			SourceID:   bill.ID,
			Date:       date(2025, time.March, 10),
		},
		Name: &name,
	})
	if !errors.Is(err, domainerror.ErrInvalidEventID) {
		t.Fatalf("expected invalid event id error, got %v", err)
	}
}

func TestUpdateEvent_ForeignRuleReportsNotFound(t *testing.T) {
	bill := activeBill(uuid.New())
	uc := NewUpdateEventUseCase(&fakeEventRepo{}, &fakeBillRepo{bill: bill}, &fakeIncomeRepo{})

	name := "x"
	_, err := uc.Execute(context.Background(), UpdateEventInput{
		UserID: uuid.New(), // not the bill's owner
		Slot: &ProjectedSlot{
			SourceKind: entity.EventSourceBill,
			SourceID:   bill.ID,
			Date:       date(2025, time.March, 1),
		},
		Name: &name,
	})
	if !errors.Is(err, domainerror.ErrEventNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestUpdateEvent_PersistedEventCannotMoveOntoSlot(t *testing.T) {
	userID := uuid.New()
	billID := uuid.New()
	evtID := uuid.New()
	eventRepo := &fakeEventRepo{byID: map[uuid.UUID]*entity.CashflowEvent{
		evtID: {
			ID:         evtID,
			UserID:     userID,
			SourceKind: entity.EventSourceBill,
			SourceID:   &billID,
			Name:       "Rent",
			Amount:     decimal.RequireFromString("-1500.00"),
			EventDate:  date(2025, time.March, 1),
			EventType:  entity.EventTypeExpense,
		},
	}}
	uc := NewUpdateEventUseCase(eventRepo, &fakeBillRepo{}, &fakeIncomeRepo{})

	moved := date(2025, time.March, 5)
	_, err := uc.Execute(context.Background(), UpdateEventInput{
		UserID:    userID,
		EventID:   &evtID,
		EventDate: &moved,
	})
	if !errors.Is(err, domainerror.ErrInvalidEventID) {
		t.Fatalf("expected invalid event id error, got %v", err)
	}
}

func TestDeleteEvent_SuppressesProjectedOccurrence(t *testing.T) {
	userID := uuid.New()
	bill := activeBill(userID)
	eventRepo := &fakeEventRepo{}
	uc := NewDeleteEventUseCase(eventRepo, &fakeBillRepo{bill: bill}, &fakeIncomeRepo{})

	out, err := uc.Execute(context.Background(), DeleteEventInput{
		UserID: userID,
		Slot: &ProjectedSlot{
			SourceKind: entity.EventSourceBill,
			SourceID:   bill.ID,
			Date:       date(2025, time.March, 1),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Error("expected success")
	}
	if eventRepo.upserted == nil || !eventRepo.upserted.Suppressed {
		t.Fatal("expected a suppression override to be upserted")
	}
}

func TestDeleteEvent_RequiresExactlyOneTarget(t *testing.T) {
	uc := NewDeleteEventUseCase(&fakeEventRepo{}, &fakeBillRepo{}, &fakeIncomeRepo{})

	_, err := uc.Execute(context.Background(), DeleteEventInput{UserID: uuid.New()})
	if !errors.Is(err, domainerror.ErrInvalidEventID) {
		t.Fatalf("expected invalid event id error, got %v", err)
	}
}
