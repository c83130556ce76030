package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cashflowd/backend/internal/domain/entity"
	"github.com/cashflowd/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.RecurringBillModel{},
		&model.RecurringIncomeModel{},
		&model.CashflowEventModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func persistedEvent(userID uuid.UUID, sourceID *uuid.UUID, name, amount string, eventDate time.Time, suppressed bool) *entity.CashflowEvent {
	now := time.Now().UTC()
	amt := decimal.RequireFromString(amount)
	eventType := entity.EventTypeIncome
	if amt.IsNegative() {
		eventType = entity.EventTypeExpense
	}
	return &entity.CashflowEvent{
		ID:         uuid.New(),
		UserID:     userID,
		SourceKind: entity.EventSourceBill,
		SourceID:   sourceID,
		Name:       name,
		Amount:     amt,
		EventDate:  eventDate,
		EventType:  eventType,
		Suppressed: suppressed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCashflowEventRepository_UpsertOverride(t *testing.T) {
	db := newTestDB(t)
	repo := NewCashflowEventRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	billID := uuid.New()
	slotDate := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	first := persistedEvent(userID, &billID, "Rent", "-1500.00", slotDate, false)
	if err := repo.UpsertOverride(ctx, first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// A second upsert on the same slot must update in place, not add a row.
	second := persistedEvent(userID, &billID, "Rent", "-1600.00", slotDate, false)
	if err := repo.UpsertOverride(ctx, second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	events, err := repo.FindForWindow(ctx, userID, slotDate, slotDate)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 row for the slot, got %d", len(events))
	}
	if !events[0].Amount.Equal(decimal.RequireFromString("-1600.00")) {
		t.Errorf("expected updated amount -1600.00, got %s", events[0].Amount)
	}
	if events[0].ID != first.ID {
		t.Errorf("expected the original row id to survive the upsert")
	}
}

func TestCashflowEventRepository_UpsertRevivesDeletedSlot(t *testing.T) {
	db := newTestDB(t)
	repo := NewCashflowEventRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	billID := uuid.New()
	slotDate := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	override := persistedEvent(userID, &billID, "Rent", "-1500.00", slotDate, false)
	if err := repo.UpsertOverride(ctx, override); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Delete(ctx, override.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	events, err := repo.FindForWindow(ctx, userID, slotDate, slotDate)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected deleted override hidden, got %d rows", len(events))
	}

	suppression := persistedEvent(userID, &billID, "Rent", "-1500.00", slotDate, true)
	if err := repo.UpsertOverride(ctx, suppression); err != nil {
		t.Fatalf("upsert after delete failed: %v", err)
	}

	events, err = repo.FindForWindow(ctx, userID, slotDate, slotDate)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(events) != 1 || !events[0].Suppressed {
		t.Fatalf("expected the slot revived as a suppression, got %+v", events)
	}
}

func TestCashflowEventRepository_FindForWindowBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewCashflowEventRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	for _, day := range []int{28, 1, 15, 31} {
		month := time.March
		if day == 28 {
			month = time.February
		}
		evt := persistedEvent(userID, nil, "one-off", "100.00", time.Date(2025, month, day, 0, 0, 0, 0, time.UTC), false)
		if err := repo.Create(ctx, evt); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	events, err := repo.FindForWindow(ctx, userID,
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected the 3 March events inclusive of both bounds, got %d", len(events))
	}

	otherUser, err := repo.FindForWindow(ctx, uuid.New(),
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(otherUser) != 0 {
		t.Errorf("expected no events for another user, got %d", len(otherUser))
	}
}

func TestCashflowEventRepository_LatestModification(t *testing.T) {
	db := newTestDB(t)
	repo := NewCashflowEventRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	stamp, err := repo.LatestModification(ctx, userID)
	if err != nil {
		t.Fatalf("latest modification failed: %v", err)
	}
	if !stamp.IsZero() {
		t.Errorf("expected zero stamp with no rows, got %s", stamp)
	}

	evt := persistedEvent(userID, nil, "one-off", "50.00", time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), false)
	if err := repo.Create(ctx, evt); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	afterCreate, err := repo.LatestModification(ctx, userID)
	if err != nil {
		t.Fatalf("latest modification failed: %v", err)
	}
	if afterCreate.IsZero() {
		t.Fatal("expected a non-zero stamp after create")
	}

	// A soft delete must also move the stamp forward, or caches keyed on it
	// would keep serving the deleted event.
	time.Sleep(10 * time.Millisecond)
	if err := repo.Delete(ctx, evt.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	afterDelete, err := repo.LatestModification(ctx, userID)
	if err != nil {
		t.Fatalf("latest modification failed: %v", err)
	}
	if !afterDelete.After(afterCreate) {
		t.Errorf("expected the stamp to advance after delete: %s -> %s", afterCreate, afterDelete)
	}
}
