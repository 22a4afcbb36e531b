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

// MonthsPerYear is the fixed length of the yearly report arrays.
const MonthsPerYear = 12

// GetYearlyReportInput represents the input for the yearly report. Year is
// a raw query value; empty or malformed values resolve to Now's year.
type GetYearlyReportInput struct {
	UserID uuid.UUID
	Year   string
	Now    time.Time
}

// GetYearlyReportOutput holds income and expense totals indexed by calendar
// month, 0 = January. Both slices always have exactly 12 entries; months
// without transactions are zero.
type GetYearlyReportOutput struct {
	Income   []decimal.Decimal
	Expenses []decimal.Decimal
}

// GetYearlyReportUseCase handles the yearly report aggregation.
type GetYearlyReportUseCase struct {
	reportRepo ReportRepository
}

// NewGetYearlyReportUseCase creates a new GetYearlyReportUseCase instance.
func NewGetYearlyReportUseCase(reportRepo ReportRepository) *GetYearlyReportUseCase {
	return &GetYearlyReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute fetches the year's transactions and folds them into per-month
// income and expense totals.
func (uc *GetYearlyReportUseCase) Execute(ctx context.Context, input GetYearlyReportInput) (*GetYearlyReportOutput, error) {
	w := period.ResolveYear(input.Year, input.Now)

	rows, err := uc.reportRepo.GetWindowRows(ctx, input.UserID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get report rows: %w", err)
	}

	out := foldYearly(rows)
	return &out, nil
}

// foldYearly accumulates per-month totals from an ordered row slice.
func foldYearly(rows []Row) GetYearlyReportOutput {
	out := GetYearlyReportOutput{
		Income:   make([]decimal.Decimal, MonthsPerYear),
		Expenses: make([]decimal.Decimal, MonthsPerYear),
	}
	for i := 0; i < MonthsPerYear; i++ {
		out.Income[i] = decimal.Zero
		out.Expenses[i] = decimal.Zero
	}

	for _, row := range rows {
		m := int(row.Date.Month()) - int(time.January)
		switch row.Type {
		case entity.TransactionTypeIncome:
			out.Income[m] = out.Income[m].Add(row.Amount)
		case entity.TransactionTypeExpense:
			out.Expenses[m] = out.Expenses[m].Add(row.Amount)
		}
	}

	return out
}
