package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendlens/backend/internal/application/usecase/dashboard"
)

// dashboardRepository implements the dashboard.DashboardRepository
// interface. The aggregate queries stick to CASE WHEN and COALESCE so the
// same SQL runs on postgres in production and sqlite in tests.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetMonthSummary returns income/expense totals and the transaction count
// for the half-open window [start, end).
func (r *dashboardRepository) GetMonthSummary(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) (*dashboard.MonthSummary, error) {
	var result struct {
		TotalIncome      decimal.Decimal `gorm:"column:total_income"`
		TotalExpenses    decimal.Decimal `gorm:"column:total_expenses"`
		TransactionCount int             `gorm:"column:transaction_count"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE 0 END), 0) AS total_income,
				COALESCE(SUM(CASE WHEN t.type = 'expense' THEN t.amount ELSE 0 END), 0) AS total_expenses,
				COUNT(*) AS transaction_count
			FROM transactions t
			JOIN accounts a ON a.id = t.account_id
			WHERE a.user_id = ?
				AND t.date >= ?
				AND t.date < ?
		`, userID, start, end).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get month summary: %w", err)
	}

	return &dashboard.MonthSummary{
		TotalIncome:      result.TotalIncome,
		TotalExpenses:    result.TotalExpenses,
		TransactionCount: result.TransactionCount,
	}, nil
}

// GetBudgetTotal returns the sum of amount limits over the user's budgets
// whose inclusive period contains the given date.
func (r *dashboardRepository) GetBudgetTotal(
	ctx context.Context,
	userID uuid.UUID,
	on time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(amount_limit), 0) AS total
			FROM budgets
			WHERE user_id = ?
				AND start_date <= ?
				AND end_date >= ?
		`, userID, on, on).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get budget total: %w", err)
	}
	return result.Total, nil
}

// GetExpenseTotal returns the sum of in-window expense transactions whose
// category belongs to the user. Uncategorized expenses are excluded, which
// mirrors how spending is attributed against budgets.
func (r *dashboardRepository) GetExpenseTotal(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(t.amount), 0) AS total
			FROM transactions t
			JOIN categories c ON c.id = t.category_id
			WHERE c.user_id = ?
				AND t.type = 'expense'
				AND t.date >= ?
				AND t.date < ?
		`, userID, start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get expense total: %w", err)
	}
	return result.Total, nil
}

// GetTopCategories returns in-window expense totals grouped by category
// name, largest first, at most limit rows.
func (r *dashboardRepository) GetTopCategories(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
	limit int,
) ([]dashboard.CategorySpend, error) {
	var rows []struct {
		Name  string          `gorm:"column:name"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT c.name AS name, SUM(t.amount) AS total
			FROM transactions t
			JOIN categories c ON c.id = t.category_id
			WHERE c.user_id = ?
				AND t.type = 'expense'
				AND t.date >= ?
				AND t.date < ?
			GROUP BY c.name
			ORDER BY total DESC
			LIMIT ?
		`, userID, start, end, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top categories: %w", err)
	}

	out := make([]dashboard.CategorySpend, len(rows))
	for i, row := range rows {
		out[i] = dashboard.CategorySpend{
			Name:  row.Name,
			Total: row.Total,
		}
	}
	return out, nil
}
