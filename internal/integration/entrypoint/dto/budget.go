package dto

import (
	"github.com/spendlens/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	CategoryName string   `json:"category_name" binding:"required"`
	CategoryType string   `json:"category_type"`
	AmountLimit  *float64 `json:"amount_limit" binding:"required"`
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      string   `json:"end_date" binding:"required"`
}

// CreateBudgetResponse represents the response for budget creation.
type CreateBudgetResponse struct {
	BudgetID string `json:"budget_id"`
}

// BudgetResponse represents one budget with its category and period spend.
type BudgetResponse struct {
	BudgetID     string  `json:"budget_id"`
	AmountLimit  float64 `json:"amount_limit"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	CategoryName string  `json:"category_name"`
	CategoryType string  `json:"category_type"`
	Spent        float64 `json:"spent"`
}

// ToBudgetResponses converts budgets with spend totals to DTOs. The result
// is never nil so the endpoint serializes an empty array, not null.
func ToBudgetResponses(budgets []*entity.BudgetWithCategory) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		amountLimit, _ := b.Budget.AmountLimit.Float64()
		spent, _ := b.Spent.Float64()
		out[i] = BudgetResponse{
			BudgetID:     b.Budget.ID.String(),
			AmountLimit:  amountLimit,
			StartDate:    b.Budget.StartDate.Format("2006-01-02"),
			EndDate:      b.Budget.EndDate.Format("2006-01-02"),
			CategoryName: b.CategoryName,
			CategoryType: string(b.CategoryType),
			Spent:        spent,
		}
	}
	return out
}
