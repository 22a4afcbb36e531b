// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Type and Category values of "" or "all" mean unfiltered.
type ListTransactionsInput struct {
	UserID   uuid.UUID
	Type     string
	Category string
	Search   string
	SortBy   string
}

// ListTransactionsOutput represents the filtered transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithNames
}

// ListTransactionsUseCase handles the filtered transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the user's transactions per the filter.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		UserID: input.UserID,
		SortBy: adapter.TransactionSortDate,
		Search: input.Search,
	}

	if input.Type != "" && input.Type != "all" {
		t := entity.TransactionType(input.Type)
		filter.Type = &t
	}
	if input.Category != "" && input.Category != "all" {
		filter.Category = input.Category
	}
	if input.SortBy == string(adapter.TransactionSortAmount) {
		filter.SortBy = adapter.TransactionSortAmount
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
