package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing a user's budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput carries the budgets along with the expense total
// spent against each one inside its own date range.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithCategory
}

// ListBudgetsUseCase handles budget listing.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute fetches all budgets for the user, newest first.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserWithSpent(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}
