// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
	domainerror "github.com/spendlens/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string // Optional; blank resolves to Uncategorized
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the created ledger entry.
type CreateTransactionOutput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Date        time.Time
	Description string
	Category    string
}

// CreateTransactionUseCase handles transaction creation logic. It resolves
// the user's default account and the named category before writing; both
// resolvers are idempotent upserts, so concurrent first writes for a user
// cannot produce duplicate rows.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}

	account, err := uc.accountRepo.FindDefaultOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	categoryName := strings.TrimSpace(input.Category)
	if categoryName == "" {
		categoryName = entity.UncategorizedName
	}
	category, err := uc.categoryRepo.GetOrCreate(
		ctx,
		input.UserID,
		categoryName,
		entity.CategoryTypeOrDefault(string(input.Type)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	tx := entity.NewTransaction(
		account.ID,
		&category.ID,
		input.Amount,
		input.Type,
		input.Date,
		input.Description,
	)
	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Date:        tx.Date,
		Description: tx.Note,
		Category:    category.Name,
	}, nil
}
