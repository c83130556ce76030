// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// RecurringBillModel represents the recurring_bills table in the database.
type RecurringBillModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDay     int             `gorm:"not null"`
	Recurrence string          `gorm:"type:varchar(10);not null"`
	AnchorDate time.Time       `gorm:"type:date;not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	AccountID  *uuid.UUID      `gorm:"type:uuid"`
	Active     bool            `gorm:"not null;default:true;index"`
	StoppedAt  *time.Time      `gorm:"type:timestamptz"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the RecurringBillModel.
func (RecurringBillModel) TableName() string {
	return "recurring_bills"
}

// ToEntity converts a RecurringBillModel to a domain RecurringBill entity.
func (m *RecurringBillModel) ToEntity() *entity.RecurringBill {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.RecurringBill{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		DueDay:     m.DueDay,
		Recurrence: entity.Recurrence(m.Recurrence),
		AnchorDate: m.AnchorDate,
		CategoryID: m.CategoryID,
		AccountID:  m.AccountID,
		Active:     m.Active,
		StoppedAt:  m.StoppedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// RecurringBillFromEntity creates a RecurringBillModel from a domain RecurringBill entity.
func RecurringBillFromEntity(bill *entity.RecurringBill) *RecurringBillModel {
	var deletedAt gorm.DeletedAt
	if bill.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *bill.DeletedAt, Valid: true}
	}

	return &RecurringBillModel{
		ID:         bill.ID,
		UserID:     bill.UserID,
		Name:       bill.Name,
		Amount:     bill.Amount,
		DueDay:     bill.DueDay,
		Recurrence: string(bill.Recurrence),
		AnchorDate: bill.AnchorDate,
		CategoryID: bill.CategoryID,
		AccountID:  bill.AccountID,
		Active:     bill.Active,
		StoppedAt:  bill.StoppedAt,
		CreatedAt:  bill.CreatedAt,
		UpdatedAt:  bill.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
