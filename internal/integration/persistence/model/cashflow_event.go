// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// CashflowEventModel represents the cashflow_events table in the database.
// Only persisted events have rows: user one-offs, overrides of projected
// occurrences, and suppressions. The composite unique index enforces at most
// one override per (user, sourceKind, sourceID, eventDate) slot.
type CashflowEventModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_event_slot"`
	SourceKind string          `gorm:"type:varchar(15);not null;uniqueIndex:idx_event_slot"`
	SourceID   *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_event_slot"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	EventDate  time.Time       `gorm:"type:date;not null;index;uniqueIndex:idx_event_slot"`
	EventType  string          `gorm:"type:varchar(10);not null"`
	Processed  bool            `gorm:"not null;default:false"`
	Suppressed bool            `gorm:"not null;default:false"`
	Metadata   string          `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CashflowEventModel.
func (CashflowEventModel) TableName() string {
	return "cashflow_events"
}

// ToEntity converts a CashflowEventModel to a domain CashflowEvent entity.
func (m *CashflowEventModel) ToEntity() *entity.CashflowEvent {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var metadata map[string]any
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &metadata); err != nil {
			slog.Warn("Failed to unmarshal event metadata", "error", err, "id", m.ID)
		}
	}

	return &entity.CashflowEvent{
		ID:         m.ID,
		UserID:     m.UserID,
		SourceKind: entity.EventSourceKind(m.SourceKind),
		SourceID:   m.SourceID,
		Name:       m.Name,
		Amount:     m.Amount,
		EventDate:  m.EventDate,
		EventType:  entity.EventType(m.EventType),
		Processed:  m.Processed,
		Suppressed: m.Suppressed,
		Metadata:   metadata,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CashflowEventFromEntity creates a CashflowEventModel from a domain CashflowEvent entity.
func CashflowEventFromEntity(event *entity.CashflowEvent) *CashflowEventModel {
	var deletedAt gorm.DeletedAt
	if event.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *event.DeletedAt, Valid: true}
	}

	metadataJSON, err := json.Marshal(event.Metadata)
	if err != nil || event.Metadata == nil {
		metadataJSON = []byte("{}")
	}

	return &CashflowEventModel{
		ID:         event.ID,
		UserID:     event.UserID,
		SourceKind: string(event.SourceKind),
		SourceID:   event.SourceID,
		Name:       event.Name,
		Amount:     event.Amount,
		EventDate:  event.EventDate,
		EventType:  string(event.EventType),
		Processed:  event.Processed,
		Suppressed: event.Suppressed,
		Metadata:   string(metadataJSON),
		CreatedAt:  event.CreatedAt,
		UpdatedAt:  event.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
