package dto

// CreateEventRequest represents the request body for one-off event creation.
// The amount is a signed decimal string: negative for an expense, positive
// for income.
type CreateEventRequest struct {
	Name      string         `json:"name" binding:"required,min=1,max=100"`
	Amount    string         `json:"amount" binding:"required"`
	EventDate string         `json:"event_date" binding:"required"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// UpdateEventRequest represents the request body for event update. The
// target is the identifier in the URL: a row UUID for a persisted event, or
// a composite "sourceType:sourceId:date" identifier for a projected
// occurrence, which materializes an override for that occurrence.
type UpdateEventRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount    *string `json:"amount,omitempty"`
	EventDate *string `json:"event_date,omitempty"`
}
