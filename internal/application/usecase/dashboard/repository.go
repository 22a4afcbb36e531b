// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopCategoriesLimit is how many categories the top-spending view returns.
const TopCategoriesLimit = 5

// DashboardRepository defines the interface for dashboard data operations.
// All date ranges are half-open: start inclusive, end exclusive.
type DashboardRepository interface {
	// GetMonthSummary returns income/expense totals and the transaction
	// count for the window. Aggregates over zero rows are zero, not null.
	GetMonthSummary(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
	) (*MonthSummary, error)

	// GetBudgetTotal returns the sum of amount limits over the user's
	// budgets whose inclusive period contains the given date.
	GetBudgetTotal(ctx context.Context, userID uuid.UUID, on time.Time) (decimal.Decimal, error)

	// GetExpenseTotal returns the sum of in-window expense transactions
	// whose category belongs to the user.
	GetExpenseTotal(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
	) (decimal.Decimal, error)

	// GetTopCategories returns in-window expense totals grouped by
	// category name, largest first, at most limit rows.
	GetTopCategories(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
		limit int,
	) ([]CategorySpend, error)
}

// MonthSummary represents aggregated totals for one month window.
type MonthSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TransactionCount int
}

// CategorySpend represents one category's expense total.
type CategorySpend struct {
	Name  string
	Total decimal.Decimal
}
