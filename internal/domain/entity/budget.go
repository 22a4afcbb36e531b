// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a spending cap for one category over an inclusive date
// range. The range is caller-supplied: typically a calendar month, but any
// span is allowed, including a single day.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AmountLimit decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amountLimit decimal.Decimal,
	startDate, endDate time.Time,
) *Budget {
	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		AmountLimit: amountLimit,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now().UTC(),
	}
}

// BudgetWithCategory represents a budget joined with its category and the
// total spent within the budget's inclusive period.
type BudgetWithCategory struct {
	Budget       *Budget
	CategoryName string
	CategoryType CategoryType
	Spent        decimal.Decimal
}
