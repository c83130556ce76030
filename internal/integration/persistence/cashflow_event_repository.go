// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
	"github.com/cashflowd/backend/internal/integration/persistence/model"
)

// cashflowEventRepository implements the adapter.CashflowEventRepository interface.
type cashflowEventRepository struct {
	db *gorm.DB
}

// NewCashflowEventRepository creates a new cashflow event repository instance.
func NewCashflowEventRepository(db *gorm.DB) adapter.CashflowEventRepository {
	return &cashflowEventRepository{
		db: db,
	}
}

// Create creates a new persisted event (a user one-off).
func (r *cashflowEventRepository) Create(ctx context.Context, event *entity.CashflowEvent) error {
	eventModel := model.CashflowEventFromEntity(event)
	result := r.db.WithContext(ctx).Create(eventModel)
	return result.Error
}

// FindByID retrieves a persisted event by its ID.
func (r *cashflowEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashflowEvent, error) {
	var eventModel model.CashflowEventModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&eventModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEventNotFound
		}
		return nil, result.Error
	}
	return eventModel.ToEntity(), nil
}

// FindForWindow retrieves the user's persisted events within [start, end] inclusive.
func (r *cashflowEventRepository) FindForWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CashflowEvent, error) {
	var eventModels []model.CashflowEventModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND event_date >= ? AND event_date <= ?", userID, start, end).
		Order("event_date ASC").
		Find(&eventModels)
	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.CashflowEvent, len(eventModels))
	for i, em := range eventModels {
		events[i] = em.ToEntity()
	}
	return events, nil
}

// UpsertOverride inserts or updates the override row for the event's slot.
// A soft-deleted row on the same slot is revived in place rather than
// violating the slot's unique index.
func (r *cashflowEventRepository) UpsertOverride(ctx context.Context, event *entity.CashflowEvent) error {
	var existing model.CashflowEventModel
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND source_kind = ? AND source_id = ? AND event_date = ?",
			event.UserID, string(event.SourceKind), event.SourceID, event.EventDate).
		First(&existing)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(model.CashflowEventFromEntity(event)).Error
		}
		return result.Error
	}

	eventModel := model.CashflowEventFromEntity(event)
	eventModel.ID = existing.ID
	eventModel.CreatedAt = existing.CreatedAt
	eventModel.DeletedAt = gorm.DeletedAt{}
	return r.db.WithContext(ctx).Unscoped().Save(eventModel).Error
}

// Update updates an existing persisted event.
func (r *cashflowEventRepository) Update(ctx context.Context, event *entity.CashflowEvent) error {
	eventModel := model.CashflowEventFromEntity(event)
	result := r.db.WithContext(ctx).Save(eventModel)
	return result.Error
}

// Delete removes a persisted event from the database (soft delete).
func (r *cashflowEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CashflowEventModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEventNotFound
	}
	return nil
}

// LatestModification returns the most recent change instant across the user's persisted events.
func (r *cashflowEventRepository) LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	return latestModification(ctx, r.db, &model.CashflowEventModel{}, userID)
}
