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

// recurringIncomeRepository implements the adapter.RecurringIncomeRepository interface.
type recurringIncomeRepository struct {
	db *gorm.DB
}

// NewRecurringIncomeRepository creates a new recurring income repository instance.
func NewRecurringIncomeRepository(db *gorm.DB) adapter.RecurringIncomeRepository {
	return &recurringIncomeRepository{
		db: db,
	}
}

// Create creates a new recurring income in the database.
func (r *recurringIncomeRepository) Create(ctx context.Context, income *entity.RecurringIncome) error {
	incomeModel := model.RecurringIncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	return result.Error
}

// FindByID retrieves an income by its ID.
func (r *recurringIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringIncome, error) {
	var incomeModel model.RecurringIncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUser retrieves all non-deleted incomes for a given user.
func (r *recurringIncomeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringIncome, error) {
	var incomeModels []model.RecurringIncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toIncomeEntities(incomeModels), nil
}

// FindActiveByUser retrieves the user's active, non-deleted incomes.
func (r *recurringIncomeRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringIncome, error) {
	var incomeModels []model.RecurringIncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("name ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toIncomeEntities(incomeModels), nil
}

// Update updates an existing income in the database.
func (r *recurringIncomeRepository) Update(ctx context.Context, income *entity.RecurringIncome) error {
	incomeModel := model.RecurringIncomeFromEntity(income)
	result := r.db.WithContext(ctx).Save(incomeModel)
	return result.Error
}

// Delete removes an income from the database (soft delete).
func (r *recurringIncomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringIncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// LatestModification returns the most recent change instant across the user's incomes.
func (r *recurringIncomeRepository) LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	return latestModification(ctx, r.db, &model.RecurringIncomeModel{}, userID)
}

func toIncomeEntities(models []model.RecurringIncomeModel) []*entity.RecurringIncome {
	incomes := make([]*entity.RecurringIncome, len(models))
	for i, im := range models {
		incomes[i] = im.ToEntity()
	}
	return incomes
}
