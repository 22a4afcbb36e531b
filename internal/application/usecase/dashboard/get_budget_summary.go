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

var hundred = decimal.NewFromInt(100)

// GetBudgetSummaryInput represents the input for the monthly budget summary.
type GetBudgetSummaryInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetBudgetSummaryOutput represents budget utilization for the current month.
type GetBudgetSummaryOutput struct {
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
}

// GetBudgetSummaryUseCase handles the monthly budget utilization aggregation.
type GetBudgetSummaryUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(dashboardRepo DashboardRepository) *GetBudgetSummaryUseCase {
	return &GetBudgetSummaryUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the current month's budget utilization. A budget counts
// if its inclusive period contains the month start; spent is the month's
// expense total over the user's categories.
func (uc *GetBudgetSummaryUseCase) Execute(ctx context.Context, input GetBudgetSummaryInput) (*GetBudgetSummaryOutput, error) {
	w := period.CurrentMonth(input.Now)

	budget, err := uc.dashboardRepo.GetBudgetTotal(ctx, input.UserID, w.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget total: %w", err)
	}

	spent, err := uc.dashboardRepo.GetExpenseTotal(ctx, input.UserID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense total: %w", err)
	}

	return &GetBudgetSummaryOutput{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Sub(spent),
		Percentage: utilization(spent, budget),
	}, nil
}

// utilization returns spent as a percentage of budget, clamped to at most
// 100. A zero budget yields 0 by convention, never a division by zero.
func utilization(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	pct := spent.Div(budget).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
