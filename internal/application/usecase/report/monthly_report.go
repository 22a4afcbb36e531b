// Package report contains monthly and yearly report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/application/usecase/period"
	"github.com/spendlens/backend/internal/domain/entity"
)

// GetMonthlyReportInput represents the input for the monthly report.
// Month and Year are raw query values; empty or malformed values resolve
// to Now's calendar position.
type GetMonthlyReportInput struct {
	UserID uuid.UUID
	Month  string
	Year   string
	Now    time.Time
}

// CategoryTotal is one category's expense total within the report window.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// DailyTotal is one calendar day's expense total within the report window.
type DailyTotal struct {
	Day    int
	Amount decimal.Decimal
}

// GetMonthlyReportOutput represents the monthly report breakdown.
// Categories and DailyTrend are ordered by first appearance in the ledger,
// not sorted.
type GetMonthlyReportOutput struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	NetBalance       decimal.Decimal
	TransactionCount int
	Categories       []CategoryTotal
	DailyTrend       []DailyTotal
}

// GetMonthlyReportUseCase handles the monthly report aggregation.
type GetMonthlyReportUseCase struct {
	reportRepo ReportRepository
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(reportRepo ReportRepository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute fetches the month's transactions once and folds them into the
// report breakdown.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	w := period.ResolveMonth(input.Month, input.Year, input.Now)

	rows, err := uc.reportRepo.GetWindowRows(ctx, input.UserID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get report rows: %w", err)
	}

	out := foldMonthly(rows)
	return &out, nil
}

// foldMonthly accumulates the monthly breakdown from an ordered row slice.
// It is pure: all decimal arithmetic, no I/O, stable insertion order for
// the category and daily groupings.
func foldMonthly(rows []Row) GetMonthlyReportOutput {
	out := GetMonthlyReportOutput{
		Income:           decimal.Zero,
		Expenses:         decimal.Zero,
		TransactionCount: len(rows),
		Categories:       []CategoryTotal{},
		DailyTrend:       []DailyTotal{},
	}

	categoryIdx := make(map[string]int)
	dayIdx := make(map[int]int)

	for _, row := range rows {
		switch row.Type {
		case entity.TransactionTypeIncome:
			out.Income = out.Income.Add(row.Amount)
		case entity.TransactionTypeExpense:
			out.Expenses = out.Expenses.Add(row.Amount)

			name := entity.UncategorizedName
			if row.CategoryName != nil {
				name = *row.CategoryName
			}
			if i, ok := categoryIdx[name]; ok {
				out.Categories[i].Total = out.Categories[i].Total.Add(row.Amount)
			} else {
				categoryIdx[name] = len(out.Categories)
				out.Categories = append(out.Categories, CategoryTotal{Name: name, Total: row.Amount})
			}

			day := row.Date.Day()
			if i, ok := dayIdx[day]; ok {
				out.DailyTrend[i].Amount = out.DailyTrend[i].Amount.Add(row.Amount)
			} else {
				dayIdx[day] = len(out.DailyTrend)
				out.DailyTrend = append(out.DailyTrend, DailyTotal{Day: day, Amount: row.Amount})
			}
		}
	}

	out.NetBalance = out.Income.Sub(out.Expenses)
	return out
}
