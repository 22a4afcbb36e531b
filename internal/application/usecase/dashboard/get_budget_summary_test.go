// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stubRepo returns fixed totals for budget summary tests.
type stubRepo struct {
	DashboardRepository
	budget decimal.Decimal
	spent  decimal.Decimal
}

func (s *stubRepo) GetBudgetTotal(_ context.Context, _ uuid.UUID, _ time.Time) (decimal.Decimal, error) {
	return s.budget, nil
}

func (s *stubRepo) GetExpenseTotal(_ context.Context, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return s.spent, nil
}

func TestGetBudgetSummary(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		budget         string
		spent          string
		wantRemaining  string
		wantPercentage string
	}{
		{
			name:           "partial utilization",
			budget:         "200",
			spent:          "50",
			wantRemaining:  "150",
			wantPercentage: "25",
		},
		{
			name:           "overspent clamps to 100",
			budget:         "100",
			spent:          "150",
			wantRemaining:  "-50",
			wantPercentage: "100",
		},
		{
			name:           "zero budget yields zero percent",
			budget:         "0",
			spent:          "75",
			wantRemaining:  "-75",
			wantPercentage: "0",
		},
		{
			name:           "exactly at the limit",
			budget:         "80",
			spent:          "80",
			wantRemaining:  "0",
			wantPercentage: "100",
		},
		{
			name:           "nothing spent",
			budget:         "120",
			spent:          "0",
			wantRemaining:  "120",
			wantPercentage: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{
				budget: decimal.RequireFromString(tt.budget),
				spent:  decimal.RequireFromString(tt.spent),
			}
			uc := NewGetBudgetSummaryUseCase(repo)

			out, err := uc.Execute(context.Background(), GetBudgetSummaryInput{
				UserID: uuid.New(),
				Now:    now,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !out.Remaining.Equal(decimal.RequireFromString(tt.wantRemaining)) {
				t.Errorf("remaining = %s, want %s", out.Remaining, tt.wantRemaining)
			}
			if !out.Percentage.Equal(decimal.RequireFromString(tt.wantPercentage)) {
				t.Errorf("percentage = %s, want %s", out.Percentage, tt.wantPercentage)
			}
			if out.Percentage.IsNegative() || out.Percentage.GreaterThan(decimal.NewFromInt(100)) {
				t.Errorf("percentage %s outside [0, 100]", out.Percentage)
			}
		})
	}
}
