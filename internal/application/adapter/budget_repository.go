// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByUserWithSpent retrieves the user's budgets joined with their
	// category and the expense total inside each budget's inclusive
	// period, ordered by start date, newest first.
	FindByUserWithSpent(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetWithCategory, error)
}
