// Package cashflow contains the cashflow projection, merge and summary logic.
package cashflow

import (
	"github.com/cashflowd/backend/internal/domain/entity"
)

// ToActualEvents reinterprets posted transactions as cashflow events, one
// event per transaction. The amount's sign decides the event type and every
// actual event is processed. Filtering by date range, deletion and account
// inclusion is the transaction store's responsibility, not this adapter's.
func ToActualEvents(transactions []*entity.Transaction) []*entity.CashflowEvent {
	events := make([]*entity.CashflowEvent, 0, len(transactions))
	for _, tx := range transactions {
		eventType := entity.EventTypeIncome
		if tx.Amount.IsNegative() {
			eventType = entity.EventTypeExpense
		}

		txID := tx.ID
		events = append(events, &entity.CashflowEvent{
			UserID:     tx.UserID,
			SourceKind: entity.EventSourceTransaction,
			SourceID:   &txID,
			Name:       tx.Description,
			Amount:     tx.Amount,
			EventDate:  midnightUTC(tx.PostedAt),
			EventType:  eventType,
			Processed:  true,
		})
	}
	return events
}
