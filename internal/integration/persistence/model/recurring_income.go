// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// RecurringIncomeModel represents the recurring_incomes table in the database.
type RecurringIncomeModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ReceiveDay int             `gorm:"not null"`
	Recurrence string          `gorm:"type:varchar(10);not null"`
	AnchorDate time.Time       `gorm:"type:date;not null"`
	AccountID  *uuid.UUID      `gorm:"type:uuid"`
	Active     bool            `gorm:"not null;default:true;index"`
	StoppedAt  *time.Time      `gorm:"type:timestamptz"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the RecurringIncomeModel.
func (RecurringIncomeModel) TableName() string {
	return "recurring_incomes"
}

// ToEntity converts a RecurringIncomeModel to a domain RecurringIncome entity.
func (m *RecurringIncomeModel) ToEntity() *entity.RecurringIncome {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.RecurringIncome{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		ReceiveDay: m.ReceiveDay,
		Recurrence: entity.Recurrence(m.Recurrence),
		AnchorDate: m.AnchorDate,
		AccountID:  m.AccountID,
		Active:     m.Active,
		StoppedAt:  m.StoppedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// RecurringIncomeFromEntity creates a RecurringIncomeModel from a domain RecurringIncome entity.
func RecurringIncomeFromEntity(income *entity.RecurringIncome) *RecurringIncomeModel {
	var deletedAt gorm.DeletedAt
	if income.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *income.DeletedAt, Valid: true}
	}

	return &RecurringIncomeModel{
		ID:         income.ID,
		UserID:     income.UserID,
		Name:       income.Name,
		Amount:     income.Amount,
		ReceiveDay: income.ReceiveDay,
		Recurrence: string(income.Recurrence),
		AnchorDate: income.AnchorDate,
		AccountID:  income.AccountID,
		Active:     income.Active,
		StoppedAt:  income.StoppedAt,
		CreatedAt:  income.CreatedAt,
		UpdatedAt:  income.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
