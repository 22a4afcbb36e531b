// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// metricsStubRepo captures the window it was queried with and returns
// fixed month totals.
type metricsStubRepo struct {
	DashboardRepository
	income  decimal.Decimal
	expense decimal.Decimal
	count   int

	gotStart time.Time
	gotEnd   time.Time
}

func (s *metricsStubRepo) GetMonthSummary(_ context.Context, _ uuid.UUID, start, end time.Time) (*MonthSummary, error) {
	s.gotStart = start
	s.gotEnd = end
	return &MonthSummary{
		TotalIncome:      s.income,
		TotalExpenses:    s.expense,
		TransactionCount: s.count,
	}, nil
}

func TestGetMetrics_BalanceIsIncomeMinusExpenses(t *testing.T) {
	repo := &metricsStubRepo{
		income:  decimal.RequireFromString("3000"),
		expense: decimal.RequireFromString("845.50"),
		count:   7,
	}
	uc := NewGetMetricsUseCase(repo)

	out, err := uc.Execute(context.Background(), GetMetricsInput{
		UserID: uuid.New(),
		Now:    time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.Balance.Equal(decimal.RequireFromString("2154.50")) {
		t.Errorf("Balance = %s, want 2154.50", out.Balance)
	}
	if out.TransactionCount != 7 {
		t.Errorf("TransactionCount = %d, want 7", out.TransactionCount)
	}
}

func TestGetMetrics_QueriesCurrentMonthWindow(t *testing.T) {
	repo := &metricsStubRepo{}
	uc := NewGetMetricsUseCase(repo)

	_, err := uc.Execute(context.Background(), GetMetricsInput{
		UserID: uuid.New(),
		Now:    time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if !repo.gotStart.Equal(wantStart) {
		t.Errorf("window start = %s, want %s", repo.gotStart, wantStart)
	}
	if !repo.gotEnd.Equal(wantEnd) {
		t.Errorf("window end = %s, want %s", repo.gotEnd, wantEnd)
	}
}
