// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
	domainerror "github.com/spendlens/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation. CategoryType
// is optional; anything other than income resolves to expense.
type CreateBudgetInput struct {
	UserID       uuid.UUID
	CategoryName string
	CategoryType string
	AmountLimit  decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
}

// CreateBudgetOutput represents the created budget.
type CreateBudgetOutput struct {
	BudgetID uuid.UUID
}

// CreateBudgetUseCase handles budget creation logic. The category is
// resolved-or-created by name before the budget row is written.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingCategoryName,
			"category_name is required",
			domainerror.ErrMissingCategoryName,
		)
	}

	if input.AmountLimit.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAmountLimit,
			"amount_limit must not be negative",
			domainerror.ErrInvalidAmountLimit,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"end_date must not be before start_date",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	category, err := uc.categoryRepo.GetOrCreate(
		ctx,
		input.UserID,
		name,
		entity.CategoryTypeOrDefault(input.CategoryType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	b := entity.NewBudget(input.UserID, category.ID, input.AmountLimit, input.StartDate, input.EndDate)
	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{BudgetID: b.ID}, nil
}
