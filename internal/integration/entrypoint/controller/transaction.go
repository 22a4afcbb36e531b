package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/application/usecase/transaction"
	"github.com/spendlens/backend/internal/domain/entity"
	domainerror "github.com/spendlens/backend/internal/domain/error"
	"github.com/spendlens/backend/internal/integration/entrypoint/dto"
	"github.com/spendlens/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createTransactionUseCase  *transaction.CreateTransactionUseCase
	listTransactionsUseCase   *transaction.ListTransactionsUseCase
	exportTransactionsUseCase *transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
	exportTransactionsUseCase *transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createTransactionUseCase:  createTransactionUseCase,
		listTransactionsUseCase:   listTransactionsUseCase,
		exportTransactionsUseCase: exportTransactionsUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "type, amount and date are required",
			Code:  string(domainerror.ErrCodeMissingDate),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Type:        entity.TransactionType(req.Type),
		Amount:      decimal.NewFromFloat(*req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		var txnErr *domainerror.TransactionError
		if errors.As(err, &txnErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: txnErr.Message,
				Code:  string(txnErr.Code),
			})
			return
		}

		slog.Error("failed to create transaction", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create transaction",
			Code:  string(domainerror.ErrCodeTransactionInternalError),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateTransactionResponse(output))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:   userID,
		Type:     ctx.Query("type"),
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		SortBy:   ctx.Query("sortBy"),
	})
	if err != nil {
		slog.Error("failed to list transactions", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list transactions",
			Code:  string(domainerror.ErrCodeTransactionInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(output.Transactions))
}

// Export handles GET /transactions/export requests.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.exportTransactionsUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{
		UserID: userID,
	})
	if err != nil {
		slog.Error("failed to export transactions", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
			Code:  string(domainerror.ErrCodeExportInternalError),
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(output.CSV))
}
