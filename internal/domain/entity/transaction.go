// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single ledger entry. Transactions are immutable
// once created: there are no update or delete operations.
//
// Type is not cross-checked against the category's type at write time, so a
// transaction tagged income can reference an expense category; aggregations
// key on the transaction type only. Known data-quality gap, kept as is.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID // Optional, can be uncategorized
	Amount     decimal.Decimal
	Type       TransactionType
	Date       time.Time
	Note       string
	CreatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
	note string,
) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     amount,
		Type:       transactionType,
		Date:       date,
		Note:       note,
		CreatedAt:  time.Now().UTC(),
	}
}

// TransactionWithNames represents a transaction joined with its category
// and account names, as read for listings and exports.
type TransactionWithNames struct {
	ID       uuid.UUID
	Amount   decimal.Decimal
	Type     TransactionType
	Date     time.Time
	Note     *string
	Category *string
	Account  *string
}
