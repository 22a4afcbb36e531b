// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account a transaction belongs to.
type AccountType string

const (
	AccountTypeCash AccountType = "cash"
	AccountTypeBank AccountType = "bank"
	AccountTypeCard AccountType = "card"
)

// DefaultAccountName is the name of the account lazily created for a user
// on their first transaction.
const DefaultAccountName = "Default Account"

// Account represents a container for a user's transactions.
// Balance is informational only; transaction writes do not maintain it.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      accountType,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDefaultAccount creates the default cash account for a user.
func NewDefaultAccount(userID uuid.UUID) *Account {
	return NewAccount(userID, DefaultAccountName, AccountTypeCash)
}
