// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// UncategorizedName is the category name used when a transaction is
// recorded without one.
const UncategorizedName = "Uncategorized"

// Category represents a user-defined transaction label with an
// income/expense polarity. Names are case-sensitive and unique per user.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryTypeOrDefault maps an arbitrary caller-supplied type string to a
// valid category type, defaulting to expense for anything that is not
// income.
func CategoryTypeOrDefault(t string) CategoryType {
	if CategoryType(t) == CategoryTypeIncome {
		return CategoryTypeIncome
	}
	return CategoryTypeExpense
}
