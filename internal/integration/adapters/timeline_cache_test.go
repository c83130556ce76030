package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
)

func newCacheWithServer(t *testing.T) (*miniredis.Miniredis, *redisTimelineCache) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, &redisTimelineCache{client: client}
}

func sampleTimeline() *entity.Timeline {
	billID := uuid.New()
	return &entity.Timeline{
		Events: []*entity.CashflowEvent{
			{
				UserID:     uuid.New(),
				SourceKind: entity.EventSourceBill,
				SourceID:   &billID,
				Name:       "Rent",
				Amount:     decimal.RequireFromString("-1200.00"),
				EventDate:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				EventType:  entity.EventTypeExpense,
			},
		},
		Summary: entity.CashflowSummary{
			TotalIncome:    decimal.Zero,
			TotalExpense:   decimal.RequireFromString("1200.00"),
			Net:            decimal.RequireFromString("-1200.00"),
			AverageIncome:  decimal.Zero,
			AverageExpense: decimal.RequireFromString("1200.00"),
			CountExpense:   1,
		},
	}
}

func TestTimelineCache_RoundTrip(t *testing.T) {
	_, cache := newCacheWithServer(t)
	ctx := context.Background()

	key := "timeline:test:2025-03-01:2025-03-31:0:123"
	if err := cache.Set(ctx, key, sampleTimeline(), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if len(got.Events) != 1 || got.Events[0].Name != "Rent" {
		t.Errorf("unexpected cached events: %+v", got.Events)
	}
	if !got.Summary.Net.Equal(decimal.RequireFromString("-1200.00")) {
		t.Errorf("expected net -1200.00, got %s", got.Summary.Net)
	}
}

func TestTimelineCache_MissReturnsNilNil(t *testing.T) {
	_, cache := newCacheWithServer(t)

	got, err := cache.Get(context.Background(), "timeline:absent")
	if err != nil {
		t.Fatalf("expected a silent miss, got error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}
}

func TestTimelineCache_CorruptEntryBehavesLikeMiss(t *testing.T) {
	server, cache := newCacheWithServer(t)

	if err := server.Set("timeline:bad", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := cache.Get(context.Background(), "timeline:bad")
	if err != nil {
		t.Fatalf("expected corrupt entry treated as miss, got error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for corrupt entry, got %+v", got)
	}
}

func TestTimelineCache_EntriesExpire(t *testing.T) {
	server, cache := newCacheWithServer(t)
	ctx := context.Background()

	key := "timeline:expiring"
	if err := cache.Set(ctx, key, sampleTimeline(), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	server.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected the entry to have expired")
	}
}
