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

// recurringBillRepository implements the adapter.RecurringBillRepository interface.
type recurringBillRepository struct {
	db *gorm.DB
}

// NewRecurringBillRepository creates a new recurring bill repository instance.
func NewRecurringBillRepository(db *gorm.DB) adapter.RecurringBillRepository {
	return &recurringBillRepository{
		db: db,
	}
}

// Create creates a new recurring bill in the database.
func (r *recurringBillRepository) Create(ctx context.Context, bill *entity.RecurringBill) error {
	billModel := model.RecurringBillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	return result.Error
}

// FindByID retrieves a bill by its ID.
func (r *recurringBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	var billModel model.RecurringBillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByUser retrieves all non-deleted bills for a given user.
func (r *recurringBillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringBill, error) {
	var billModels []model.RecurringBillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBillEntities(billModels), nil
}

// FindActiveByUser retrieves the user's active, non-deleted bills.
func (r *recurringBillRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringBill, error) {
	var billModels []model.RecurringBillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("name ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toBillEntities(billModels), nil
}

// Update updates an existing bill in the database.
func (r *recurringBillRepository) Update(ctx context.Context, bill *entity.RecurringBill) error {
	billModel := model.RecurringBillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	return result.Error
}

// Delete removes a bill from the database (soft delete).
func (r *recurringBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringBillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBillNotFound
	}
	return nil
}

// LatestModification returns the most recent change instant across the user's bills.
func (r *recurringBillRepository) LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	return latestModification(ctx, r.db, &model.RecurringBillModel{}, userID)
}

func toBillEntities(models []model.RecurringBillModel) []*entity.RecurringBill {
	bills := make([]*entity.RecurringBill, len(models))
	for i, bm := range models {
		bills[i] = bm.ToEntity()
	}
	return bills
}
