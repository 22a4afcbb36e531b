package dto

import (
	"github.com/spendlens/backend/internal/application/usecase/report"
)

// CategoryTotalResponse represents one category total in the monthly report.
type CategoryTotalResponse struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// DailyTrendResponse represents one day's expense total in the monthly report.
type DailyTrendResponse struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

// MonthlyReportResponse represents the monthly report response.
type MonthlyReportResponse struct {
	Income       float64                 `json:"income"`
	Expenses     float64                 `json:"expenses"`
	NetBalance   float64                 `json:"netBalance"`
	Transactions int                     `json:"transactions"`
	Categories   []CategoryTotalResponse `json:"categories"`
	DailyTrend   []DailyTrendResponse    `json:"dailyTrend"`
}

// YearlyReportResponse represents the yearly report response. Both arrays
// have exactly 12 entries indexed by calendar month, 0 = January.
type YearlyReportResponse struct {
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
}

// ToMonthlyReportResponse converts a GetMonthlyReportOutput to a MonthlyReportResponse DTO.
func ToMonthlyReportResponse(output *report.GetMonthlyReportOutput) MonthlyReportResponse {
	income, _ := output.Income.Float64()
	expenses, _ := output.Expenses.Float64()
	netBalance, _ := output.NetBalance.Float64()

	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, c := range output.Categories {
		total, _ := c.Total.Float64()
		categories[i] = CategoryTotalResponse{
			Name:  c.Name,
			Total: total,
		}
	}

	dailyTrend := make([]DailyTrendResponse, len(output.DailyTrend))
	for i, d := range output.DailyTrend {
		amount, _ := d.Amount.Float64()
		dailyTrend[i] = DailyTrendResponse{
			Day:    d.Day,
			Amount: amount,
		}
	}

	return MonthlyReportResponse{
		Income:       income,
		Expenses:     expenses,
		NetBalance:   netBalance,
		Transactions: output.TransactionCount,
		Categories:   categories,
		DailyTrend:   dailyTrend,
	}
}

// ToYearlyReportResponse converts a GetYearlyReportOutput to a YearlyReportResponse DTO.
func ToYearlyReportResponse(output *report.GetYearlyReportOutput) YearlyReportResponse {
	income := make([]float64, len(output.Income))
	for i, v := range output.Income {
		income[i], _ = v.Float64()
	}
	expenses := make([]float64, len(output.Expenses))
	for i, v := range output.Expenses {
		expenses[i], _ = v.Float64()
	}
	return YearlyReportResponse{
		Income:   income,
		Expenses: expenses,
	}
}
