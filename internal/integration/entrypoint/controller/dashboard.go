package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendlens/backend/internal/application/usecase/dashboard"
	domainerror "github.com/spendlens/backend/internal/domain/error"
	"github.com/spendlens/backend/internal/integration/entrypoint/dto"
	"github.com/spendlens/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints. All three views
// aggregate over the current calendar month.
type DashboardController struct {
	getMetricsUseCase       *dashboard.GetMetricsUseCase
	getBudgetSummaryUseCase *dashboard.GetBudgetSummaryUseCase
	getTopCategoriesUseCase *dashboard.GetTopCategoriesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getMetricsUseCase *dashboard.GetMetricsUseCase,
	getBudgetSummaryUseCase *dashboard.GetBudgetSummaryUseCase,
	getTopCategoriesUseCase *dashboard.GetTopCategoriesUseCase,
) *DashboardController {
	return &DashboardController{
		getMetricsUseCase:       getMetricsUseCase,
		getBudgetSummaryUseCase: getBudgetSummaryUseCase,
		getTopCategoriesUseCase: getTopCategoriesUseCase,
	}
}

// GetMetrics handles GET /dashboard/metrics requests.
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getMetricsUseCase.Execute(ctx.Request.Context(), dashboard.GetMetricsInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to get dashboard metrics", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load dashboard metrics",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricsResponse(output))
}

// GetBudgetSummary handles GET /dashboard/budget requests.
func (c *DashboardController) GetBudgetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getBudgetSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetBudgetSummaryInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to get budget summary", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load budget summary",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(output))
}

// GetTopCategories handles GET /dashboard/categories requests.
func (c *DashboardController) GetTopCategories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getTopCategoriesUseCase.Execute(ctx.Request.Context(), dashboard.GetTopCategoriesInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to get top categories", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load top categories",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySpendResponses(output.Categories))
}
