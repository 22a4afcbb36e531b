// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/application/usecase/period"
)

// GetTopCategoriesInput represents the input for the top-spending view.
type GetTopCategoriesInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetTopCategoriesOutput represents the top expense categories of the
// current month, largest first. Ties break arbitrarily; this is a ranked
// top-N view, not an ordering contract.
type GetTopCategoriesOutput struct {
	Categories []CategorySpend
}

// GetTopCategoriesUseCase handles the top-spending-categories aggregation.
type GetTopCategoriesUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetTopCategoriesUseCase creates a new GetTopCategoriesUseCase instance.
func NewGetTopCategoriesUseCase(dashboardRepo DashboardRepository) *GetTopCategoriesUseCase {
	return &GetTopCategoriesUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute groups the current month's expense transactions by category name
// and returns the five largest totals.
func (uc *GetTopCategoriesUseCase) Execute(ctx context.Context, input GetTopCategoriesInput) (*GetTopCategoriesOutput, error) {
	w := period.CurrentMonth(input.Now)

	categories, err := uc.dashboardRepo.GetTopCategories(ctx, input.UserID, w.Start, w.End, TopCategoriesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top categories: %w", err)
	}

	return &GetTopCategoriesOutput{Categories: categories}, nil
}
