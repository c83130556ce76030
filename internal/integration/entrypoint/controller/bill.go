package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/application/usecase/bill"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
	"github.com/cashflowd/backend/internal/integration/entrypoint/dto"
	"github.com/cashflowd/backend/internal/integration/entrypoint/middleware"
)

// BillController handles recurring bill endpoints.
type BillController struct {
	createUseCase     *bill.CreateBillUseCase
	listUseCase       *bill.ListBillsUseCase
	updateUseCase     *bill.UpdateBillUseCase
	stopUseCase       *bill.StopBillUseCase
	reactivateUseCase *bill.ReactivateBillUseCase
	deleteUseCase     *bill.DeleteBillUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	createUseCase *bill.CreateBillUseCase,
	listUseCase *bill.ListBillsUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	stopUseCase *bill.StopBillUseCase,
	reactivateUseCase *bill.ReactivateBillUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
) *BillController {
	return &BillController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		stopUseCase:       stopUseCase,
		reactivateUseCase: reactivateUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRuleFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidRuleAmount),
		})
		return
	}

	input := bill.CreateBillInput{
		UserID:     userID,
		Name:       req.Name,
		Amount:     amount,
		DueDay:     req.DueDay,
		Recurrence: entity.Recurrence(req.Recurrence),
	}

	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if input.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := bill.ListBillsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output.Bills))
}

// Update handles PATCH /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := bill.UpdateBillInput{
		BillID:        billID,
		UserID:        userID,
		Name:          req.Name,
		DueDay:        req.DueDay,
		ClearCategory: req.ClearCategory,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidRuleAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.Recurrence != nil {
		recurrence := entity.Recurrence(*req.Recurrence)
		input.Recurrence = &recurrence
	}

	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if input.AccountID, err = parseOptionalUUID(req.AccountID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Stop handles POST /bills/:id/stop requests.
func (c *BillController) Stop(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	output, err := c.stopUseCase.Execute(ctx.Request.Context(), bill.StopBillInput{
		BillID: billID,
		UserID: userID,
	})
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Reactivate handles POST /bills/:id/reactivate requests.
func (c *BillController) Reactivate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	output, err := c.reactivateUseCase.Execute(ctx.Request.Context(), bill.ReactivateBillInput{
		BillID: billID,
		UserID: userID,
	})
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), bill.DeleteBillInput{
		BillID: billID,
		UserID: userID,
	})
	if err != nil {
		handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseOptionalUUID parses an optional UUID string. Nil or empty input yields
// a nil UUID pointer.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleRecurringError handles recurring rule errors and returns appropriate
// HTTP responses.
func handleRecurringError(ctx *gin.Context, err error) {
	var rcrErr *domainerror.RecurringError
	if errors.As(err, &rcrErr) {
		statusCode := getStatusCodeForRecurringError(rcrErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rcrErr.Message,
			Code:  string(rcrErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecurringError maps recurring error codes to HTTP status codes.
func getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound,
		domainerror.ErrCodeIncomeNotFound,
		domainerror.ErrCodeRuleCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidRuleAmount,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeInvalidRecurrence,
		domainerror.ErrCodeMissingRuleFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeRuleAlreadyStopped,
		domainerror.ErrCodeRuleNotStopped:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
