package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/application/usecase/event"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
	"github.com/cashflowd/backend/internal/integration/entrypoint/dto"
	"github.com/cashflowd/backend/internal/integration/entrypoint/middleware"
)

// EventController handles cashflow event endpoints. Events are addressed by
// their row UUID when persisted, or by the composite
// "sourceType:sourceId:date" identifier the timeline returns for projected
// occurrences. Editing or deleting a projected occurrence materializes an
// override for that one occurrence without touching the rule.
type EventController struct {
	createUseCase *event.CreateEventUseCase
	updateUseCase *event.UpdateEventUseCase
	deleteUseCase *event.DeleteEventUseCase
}

// NewEventController creates a new event controller instance.
func NewEventController(
	createUseCase *event.CreateEventUseCase,
	updateUseCase *event.UpdateEventUseCase,
	deleteUseCase *event.DeleteEventUseCase,
) *EventController {
	return &EventController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /events requests.
func (c *EventController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEventFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidEventAmount),
		})
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingEventFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), event.CreateEventInput{
		UserID:    userID,
		Name:      req.Name,
		Amount:    amount,
		EventDate: eventDate,
		Metadata:  req.Metadata,
	})
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashflowEventResponse(output.Event))
}

// Update handles PATCH /events/:id requests.
func (c *EventController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	eventID, slot, ok := parseEventTarget(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event identifier",
			Code:  string(domainerror.ErrCodeInvalidEventID),
		})
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := event.UpdateEventInput{
		UserID:  userID,
		EventID: eventID,
		Slot:    slot,
		Name:    req.Name,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidEventAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid event date format. Use YYYY-MM-DD",
			})
			return
		}
		input.EventDate = &eventDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashflowEventResponse(output.Event))
}

// Delete handles DELETE /events/:id requests.
func (c *EventController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	eventID, slot, ok := parseEventTarget(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event identifier",
			Code:  string(domainerror.ErrCodeInvalidEventID),
		})
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), event.DeleteEventInput{
		UserID:  userID,
		EventID: eventID,
		Slot:    slot,
	})
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseEventTarget resolves an event identifier into exactly one target: a
// persisted event's UUID, or a projected occurrence's slot parsed from its
// composite "sourceType:sourceId:date" form.
func parseEventTarget(param string) (*uuid.UUID, *event.ProjectedSlot, bool) {
	if id, err := uuid.Parse(param); err == nil {
		return &id, nil, true
	}

	parts := strings.Split(param, ":")
	if len(parts) != 3 {
		return nil, nil, false
	}

	kind := entity.EventSourceKind(parts[0])
	if kind != entity.EventSourceBill && kind != entity.EventSourceIncome {
		return nil, nil, false
	}

	sourceID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, nil, false
	}

	date, err := time.Parse("2006-01-02", parts[2])
	if err != nil {
		return nil, nil, false
	}

	return nil, &event.ProjectedSlot{
		SourceKind: kind,
		SourceID:   sourceID,
		Date:       date,
	}, true
}

// handleEventError handles event errors and returns appropriate HTTP responses.
func (c *EventController) handleEventError(ctx *gin.Context, err error) {
	var cfErr *domainerror.CashflowError
	if errors.As(err, &cfErr) {
		ctx.JSON(getStatusCodeForCashflowError(cfErr.Code), dto.ErrorResponse{
			Error: cfErr.Message,
			Code:  string(cfErr.Code),
		})
		return
	}

	var rcrErr *domainerror.RecurringError
	if errors.As(err, &rcrErr) {
		ctx.JSON(getStatusCodeForRecurringError(rcrErr.Code), dto.ErrorResponse{
			Error: rcrErr.Message,
			Code:  string(rcrErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
