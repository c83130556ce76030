package dto

import (
	"fmt"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// CashflowEventResponse represents a single timeline entry in API responses.
// Projected events carry a synthetic composite identifier; persisted events
// carry their row UUID.
type CashflowEventResponse struct {
	ID         string  `json:"id"`
	SourceType string  `json:"source_type"`
	SourceID   *string `json:"source_id"`
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	EventDate  string  `json:"event_date"`
	EventType  string  `json:"event_type"`
	Processed  bool    `json:"processed"`
}

// CashflowSummaryResponse represents the timeline aggregate totals.
type CashflowSummaryResponse struct {
	TotalIncome    string `json:"total_income"`
	TotalExpense   string `json:"total_expense"`
	Net            string `json:"net"`
	AverageIncome  string `json:"average_income"`
	AverageExpense string `json:"average_expense"`
	CountIncome    int    `json:"count_income"`
	CountExpense   int    `json:"count_expense"`
}

// TimelineResponse represents the response for GET /cashflow.
type TimelineResponse struct {
	Events  []CashflowEventResponse `json:"events"`
	Summary CashflowSummaryResponse `json:"summary"`
}

// ToCashflowEventResponse converts a domain CashflowEvent to its wire form.
func ToCashflowEventResponse(event *entity.CashflowEvent) CashflowEventResponse {
	var sourceID *string
	if event.SourceID != nil {
		s := event.SourceID.String()
		sourceID = &s
	}

	return CashflowEventResponse{
		ID:         eventWireID(event),
		SourceType: string(event.SourceKind),
		SourceID:   sourceID,
		Name:       event.Name,
		Amount:     event.Amount.StringFixed(2),
		EventDate:  event.EventDate.Format("2006-01-02"),
		EventType:  string(event.EventType),
		Processed:  event.Processed,
	}
}

// ToTimelineResponse converts merged events and their summary to wire form.
func ToTimelineResponse(events []*entity.CashflowEvent, summary entity.CashflowSummary) TimelineResponse {
	eventResponses := make([]CashflowEventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, ToCashflowEventResponse(event))
	}

	return TimelineResponse{
		Events: eventResponses,
		Summary: CashflowSummaryResponse{
			TotalIncome:    summary.TotalIncome.StringFixed(2),
			TotalExpense:   summary.TotalExpense.StringFixed(2),
			Net:            summary.Net.StringFixed(2),
			AverageIncome:  summary.AverageIncome.StringFixed(2),
			AverageExpense: summary.AverageExpense.StringFixed(2),
			CountIncome:    summary.CountIncome,
			CountExpense:   summary.CountExpense,
		},
	}
}

// eventWireID returns the event's API identifier. Persisted events use their
// row UUID; synthetic events (projections and transaction mirrors) use a
// composite "sourceType:sourceId:date" identifier that is stable across
// requests because projection is deterministic.
func eventWireID(event *entity.CashflowEvent) string {
	if event.Persisted() {
		return event.ID.String()
	}
	if event.SourceID != nil {
		return fmt.Sprintf("%s:%s:%s",
			event.SourceKind,
			event.SourceID,
			event.EventDate.Format("2006-01-02"),
		)
	}
	return ""
}
