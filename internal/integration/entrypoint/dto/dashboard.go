package dto

import (
	"github.com/spendlens/backend/internal/application/usecase/dashboard"
)

// MetricsResponse represents the dashboard metrics response. Field names
// are the client compatibility surface; do not rename them.
type MetricsResponse struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
	Transactions  int     `json:"transactions"`
}

// BudgetSummaryResponse represents the dashboard budget utilization response.
type BudgetSummaryResponse struct {
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// CategorySpendResponse represents one top-spending category.
type CategorySpendResponse struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// ToMetricsResponse converts a GetMetricsOutput to a MetricsResponse DTO.
func ToMetricsResponse(output *dashboard.GetMetricsOutput) MetricsResponse {
	totalIncome, _ := output.TotalIncome.Float64()
	totalExpenses, _ := output.TotalExpenses.Float64()
	balance, _ := output.Balance.Float64()

	return MetricsResponse{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       balance,
		Transactions:  output.TransactionCount,
	}
}

// ToBudgetSummaryResponse converts a GetBudgetSummaryOutput to a BudgetSummaryResponse DTO.
func ToBudgetSummaryResponse(output *dashboard.GetBudgetSummaryOutput) BudgetSummaryResponse {
	budget, _ := output.Budget.Float64()
	spent, _ := output.Spent.Float64()
	remaining, _ := output.Remaining.Float64()
	percentage, _ := output.Percentage.Float64()

	return BudgetSummaryResponse{
		Budget:     budget,
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
	}
}

// ToCategorySpendResponses converts top-category spends to DTOs. The
// result is never nil so the endpoint serializes an empty array, not null.
func ToCategorySpendResponses(categories []dashboard.CategorySpend) []CategorySpendResponse {
	out := make([]CategorySpendResponse, len(categories))
	for i, c := range categories {
		total, _ := c.Total.Float64()
		out[i] = CategorySpendResponse{
			Name:  c.Name,
			Total: total,
		}
	}
	return out
}
