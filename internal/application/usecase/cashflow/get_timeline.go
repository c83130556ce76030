// Package cashflow contains the cashflow projection, merge and summary logic.
package cashflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// DefaultLookaheadDays extends the projection window past the requested end
// so near-future occurrences surface. Actual-transaction lookup never uses
// the look-ahead.
const DefaultLookaheadDays = 30

// GetTimelineInput represents the input for a timeline request.
type GetTimelineInput struct {
	UserID        uuid.UUID
	WindowStart   time.Time
	WindowEnd     time.Time
	LookaheadDays *int // Optional, defaults to DefaultLookaheadDays
}

// GetTimelineOutput represents the computed timeline and its summary.
type GetTimelineOutput struct {
	Events  []*entity.CashflowEvent
	Summary entity.CashflowSummary
}

// GetTimelineUseCase orchestrates one full projection request: rules are
// expanded over the extended window, posted transactions over the requested
// window only, persisted overrides applied, and the merged timeline
// summarized. Every call recomputes from scratch unless the optional cache
// holds an entry for the exact same window and modification stamp.
type GetTimelineUseCase struct {
	billRepo   adapter.RecurringBillRepository
	incomeRepo adapter.RecurringIncomeRepository
	eventRepo  adapter.CashflowEventRepository
	txRepo     adapter.TransactionRepository
	cache      adapter.TimelineCache // Optional, may be nil
	cacheTTL   time.Duration
}

// NewGetTimelineUseCase creates a new GetTimelineUseCase instance. A nil
// cache disables timeline caching.
func NewGetTimelineUseCase(
	billRepo adapter.RecurringBillRepository,
	incomeRepo adapter.RecurringIncomeRepository,
	eventRepo adapter.CashflowEventRepository,
	txRepo adapter.TransactionRepository,
	cache adapter.TimelineCache,
	cacheTTL time.Duration,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		billRepo:   billRepo,
		incomeRepo: incomeRepo,
		eventRepo:  eventRepo,
		txRepo:     txRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Execute performs the timeline computation. Store failures fail the whole
// request: a timeline silently missing its actual events would report a
// misleadingly optimistic summary.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, input GetTimelineInput) (*GetTimelineOutput, error) {
	if input.WindowStart.After(input.WindowEnd) {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidWindow,
			"window_start must not be after window_end",
			domainerror.ErrInvalidWindow,
		)
	}

	lookahead := DefaultLookaheadDays
	if input.LookaheadDays != nil {
		lookahead = *input.LookaheadDays
	}
	if lookahead < 0 {
		return nil, domainerror.NewCashflowError(
			domainerror.ErrCodeInvalidLookahead,
			"lookahead_days must not be negative",
			domainerror.ErrInvalidLookahead,
		)
	}

	start := midnightUTC(input.WindowStart)
	end := midnightUTC(input.WindowEnd)
	extendedEnd := end.AddDate(0, 0, lookahead)

	cacheKey, err := uc.cacheKey(ctx, input.UserID, start, end, lookahead)
	if err == nil && cacheKey != "" {
		if cached, cacheErr := uc.cache.Get(ctx, cacheKey); cacheErr == nil && cached != nil {
			return &GetTimelineOutput{Events: cached.Events, Summary: cached.Summary}, nil
		}
	}

	projected, err := uc.projectRules(ctx, input.UserID, start, extendedEnd)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.txRepo.FindByUserAndRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	actual := ToActualEvents(transactions)

	overrides, err := uc.eventRepo.FindForWindow(ctx, input.UserID, start, extendedEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted events: %w", err)
	}

	events := MergeTimeline(projected, actual, overrides)
	summary := Summarize(events, start, end)

	if cacheKey != "" {
		// A failed cache write never fails the request.
		_ = uc.cache.Set(ctx, cacheKey, &entity.Timeline{Events: events, Summary: summary}, uc.cacheTTL)
	}

	return &GetTimelineOutput{Events: events, Summary: summary}, nil
}

// projectRules expands every active rule for the user over the extended window.
func (uc *GetTimelineUseCase) projectRules(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CashflowEvent, error) {
	bills, err := uc.billRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	incomes, err := uc.incomeRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	var projected []*entity.CashflowEvent
	for _, b := range bills {
		events, err := ProjectOccurrences(RuleFromBill(b), start, end)
		if err != nil {
			return nil, err
		}
		projected = append(projected, events...)
	}
	for _, i := range incomes {
		events, err := ProjectOccurrences(RuleFromIncome(i), start, end)
		if err != nil {
			return nil, err
		}
		projected = append(projected, events...)
	}
	return projected, nil
}

// cacheKey builds the versioned cache key for the request, or "" when the
// cache is disabled. The key embeds the latest modification stamp across the
// user's rules and persisted events, so any edit after the cached computation
// produces a different key and forces a fresh computation.
func (uc *GetTimelineUseCase) cacheKey(ctx context.Context, userID uuid.UUID, start, end time.Time, lookahead int) (string, error) {
	if uc.cache == nil {
		return "", nil
	}

	stamp := time.Time{}
	for _, fetch := range []func(context.Context, uuid.UUID) (time.Time, error){
		uc.billRepo.LatestModification,
		uc.incomeRepo.LatestModification,
		uc.eventRepo.LatestModification,
		uc.txRepo.LatestModification,
	} {
		t, err := fetch(ctx, userID)
		if err != nil {
			return "", err
		}
		if t.After(stamp) {
			stamp = t
		}
	}

	return fmt.Sprintf("timeline:%s:%s:%s:%d:%d",
		userID,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
		lookahead,
		stamp.UTC().UnixNano(),
	), nil
}
