package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cashflowd/backend/internal/application/usecase/cashflow"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
	"github.com/cashflowd/backend/internal/integration/entrypoint/dto"
	"github.com/cashflowd/backend/internal/integration/entrypoint/middleware"
)

// CashflowController handles the cashflow timeline endpoint.
type CashflowController struct {
	timelineUseCase *cashflow.GetTimelineUseCase
}

// NewCashflowController creates a new cashflow controller instance.
func NewCashflowController(timelineUseCase *cashflow.GetTimelineUseCase) *CashflowController {
	return &CashflowController{
		timelineUseCase: timelineUseCase,
	}
}

// GetTimeline handles GET /cashflow requests.
func (c *CashflowController) GetTimeline(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	start, err := time.Parse("2006-01-02", ctx.Query("start"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing start date. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidWindow),
		})
		return
	}

	end, err := time.Parse("2006-01-02", ctx.Query("end"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing end date. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidWindow),
		})
		return
	}

	input := cashflow.GetTimelineInput{
		UserID:      userID,
		WindowStart: start,
		WindowEnd:   end,
	}

	if lookaheadStr := ctx.Query("lookahead_days"); lookaheadStr != "" {
		lookahead, err := strconv.Atoi(lookaheadStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid lookahead_days value",
				Code:  string(domainerror.ErrCodeInvalidLookahead),
			})
			return
		}
		input.LookaheadDays = &lookahead
	}

	output, err := c.timelineUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashflowError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimelineResponse(output.Events, output.Summary))
}

// handleCashflowError handles cashflow errors and returns appropriate HTTP responses.
func (c *CashflowController) handleCashflowError(ctx *gin.Context, err error) {
	var cfErr *domainerror.CashflowError
	if errors.As(err, &cfErr) {
		statusCode := getStatusCodeForCashflowError(cfErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cfErr.Message,
			Code:  string(cfErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCashflowError maps cashflow error codes to HTTP status codes.
func getStatusCodeForCashflowError(code domainerror.CashflowErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidWindow,
		domainerror.ErrCodeInvalidLookahead,
		domainerror.ErrCodeInvalidEventID,
		domainerror.ErrCodeInvalidEventAmount,
		domainerror.ErrCodeMissingEventFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeEventNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
