// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/application/usecase/period"
)

// GetMetricsInput represents the input for getting dashboard metrics.
type GetMetricsInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetMetricsOutput represents the current-month dashboard totals.
type GetMetricsOutput struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// GetMetricsUseCase handles the dashboard metrics aggregation.
type GetMetricsUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(dashboardRepo DashboardRepository) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute sums the current month's transactions by type. Transactions
// without a recognized type count toward the transaction count but neither
// total. Balance is income minus expenses, exactly.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, input GetMetricsInput) (*GetMetricsOutput, error) {
	w := period.CurrentMonth(input.Now)

	summary, err := uc.dashboardRepo.GetMonthSummary(ctx, input.UserID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get month summary: %w", err)
	}

	return &GetMetricsOutput{
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		Balance:          summary.TotalIncome.Sub(summary.TotalExpenses),
		TransactionCount: summary.TransactionCount,
	}, nil
}
