package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
	"github.com/spendlens/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	return r.db.WithContext(ctx).Create(budgetModel).Error
}

// FindByUserWithSpent retrieves the user's budgets joined with their
// category and the expense total spent inside each budget's inclusive
// period, newest start date first. Spent counts only expense transactions
// tagged with the budget's category.
func (r *budgetRepository) FindByUserWithSpent(
	ctx context.Context,
	userID uuid.UUID,
) ([]*entity.BudgetWithCategory, error) {
	var rows []struct {
		ID           uuid.UUID       `gorm:"column:id"`
		UserID       uuid.UUID       `gorm:"column:user_id"`
		CategoryID   uuid.UUID       `gorm:"column:category_id"`
		AmountLimit  decimal.Decimal `gorm:"column:amount_limit"`
		StartDate    time.Time       `gorm:"column:start_date"`
		EndDate      time.Time       `gorm:"column:end_date"`
		CreatedAt    time.Time       `gorm:"column:created_at"`
		CategoryName string          `gorm:"column:category_name"`
		CategoryType string          `gorm:"column:category_type"`
		Spent        decimal.Decimal `gorm:"column:spent"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				b.id, b.user_id, b.category_id, b.amount_limit,
				b.start_date, b.end_date, b.created_at,
				c.name AS category_name,
				c.type AS category_type,
				COALESCE((
					SELECT SUM(t.amount)
					FROM transactions t
					JOIN accounts a ON a.id = t.account_id
					WHERE a.user_id = b.user_id
						AND t.category_id = b.category_id
						AND t.type = 'expense'
						AND t.date >= b.start_date
						AND t.date <= b.end_date
				), 0) AS spent
			FROM budgets b
			JOIN categories c ON c.id = b.category_id
			WHERE b.user_id = ?
			ORDER BY b.start_date DESC, b.created_at DESC
		`, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	out := make([]*entity.BudgetWithCategory, len(rows))
	for i, row := range rows {
		out[i] = &entity.BudgetWithCategory{
			Budget: &entity.Budget{
				ID:          row.ID,
				UserID:      row.UserID,
				CategoryID:  row.CategoryID,
				AmountLimit: row.AmountLimit,
				StartDate:   row.StartDate,
				EndDate:     row.EndDate,
				CreatedAt:   row.CreatedAt,
			},
			CategoryName: row.CategoryName,
			CategoryType: entity.CategoryType(row.CategoryType),
			Spent:        row.Spent,
		}
	}
	return out, nil
}
