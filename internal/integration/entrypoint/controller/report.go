package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendlens/backend/internal/application/usecase/report"
	domainerror "github.com/spendlens/backend/internal/domain/error"
	"github.com/spendlens/backend/internal/integration/entrypoint/dto"
	"github.com/spendlens/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints. Month and year query
// parameters are lenient: absent or malformed values fall back to the
// current date rather than erroring.
type ReportController struct {
	getMonthlyReportUseCase *report.GetMonthlyReportUseCase
	getYearlyReportUseCase  *report.GetYearlyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getMonthlyReportUseCase *report.GetMonthlyReportUseCase,
	getYearlyReportUseCase *report.GetYearlyReportUseCase,
) *ReportController {
	return &ReportController{
		getMonthlyReportUseCase: getMonthlyReportUseCase,
		getYearlyReportUseCase:  getYearlyReportUseCase,
	}
}

// GetMonthly handles GET /reports/monthly requests.
func (c *ReportController) GetMonthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getMonthlyReportUseCase.Execute(ctx.Request.Context(), report.GetMonthlyReportInput{
		UserID: userID,
		Month:  ctx.Query("month"),
		Year:   ctx.Query("year"),
		Now:    time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to build monthly report", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build monthly report",
			Code:  string(domainerror.ErrCodeReportInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// GetYearly handles GET /reports/yearly requests.
func (c *ReportController) GetYearly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getYearlyReportUseCase.Execute(ctx.Request.Context(), report.GetYearlyReportInput{
		UserID: userID,
		Year:   ctx.Query("year"),
		Now:    time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to build yearly report", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build yearly report",
			Code:  string(domainerror.ErrCodeReportInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlyReportResponse(output))
}
