package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Transactions carry no user_id of their own; ownership flows through the
// account, so every user-scoped query joins accounts.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	Date       time.Time       `gorm:"not null;index"`
	Note       string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`

	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		AccountID:  m.AccountID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		Date:       m.Date,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		AccountID:  transaction.AccountID,
		CategoryID: transaction.CategoryID,
		Amount:     transaction.Amount,
		Type:       string(transaction.Type),
		Date:       transaction.Date,
		Note:       transaction.Note,
		CreatedAt:  transaction.CreatedAt,
	}
}
