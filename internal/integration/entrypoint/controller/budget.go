package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/application/usecase/budget"
	domainerror "github.com/spendlens/backend/internal/domain/error"
	"github.com/spendlens/backend/internal/integration/entrypoint/dto"
	"github.com/spendlens/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createBudgetUseCase *budget.CreateBudgetUseCase
	listBudgetsUseCase  *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createBudgetUseCase *budget.CreateBudgetUseCase,
	listBudgetsUseCase *budget.ListBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		createBudgetUseCase: createBudgetUseCase,
		listBudgetsUseCase:  listBudgetsUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "category_name, amount_limit, start_date and end_date are required",
			Code:  string(domainerror.ErrCodeMissingCategoryName),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
		})
		return
	}

	output, err := c.createBudgetUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:       userID,
		CategoryName: req.CategoryName,
		CategoryType: req.CategoryType,
		AmountLimit:  decimal.NewFromFloat(*req.AmountLimit),
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: budgetErr.Message,
				Code:  string(budgetErr.Code),
			})
			return
		}

		slog.Error("failed to create budget", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create budget",
			Code:  string(domainerror.ErrCodeBudgetInternalError),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateBudgetResponse{
		BudgetID: output.BudgetID.String(),
	})
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listBudgetsUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		slog.Error("failed to list budgets", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list budgets",
			Code:  string(domainerror.ErrCodeBudgetInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponses(output.Budgets))
}
