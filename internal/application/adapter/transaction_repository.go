// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/domain/entity"
)

// TransactionSort selects the ordering of a transaction listing.
type TransactionSort string

const (
	// TransactionSortDate orders by transaction date, newest first.
	TransactionSortDate TransactionSort = "date"
	// TransactionSortAmount orders by amount, largest first.
	TransactionSortAmount TransactionSort = "amount"
)

// TransactionFilter defines filter options for listing transactions.
// Zero values mean "no filter".
type TransactionFilter struct {
	UserID   uuid.UUID
	Type     *entity.TransactionType
	Category string // Exact category name match
	Search   string // Case-insensitive contains on note or category name
	SortBy   TransactionSort
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByFilter retrieves a user's transactions joined with category
	// names, filtered and ordered per the filter.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithNames, error)

	// FindAllForExport retrieves every transaction for the user joined with
	// category and account names, newest first.
	FindAllForExport(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithNames, error)
}
