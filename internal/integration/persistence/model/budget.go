package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. The date range
// is inclusive on both ends.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	AmountLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate   time.Time       `gorm:"not null;index"`
	EndDate     time.Time       `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		AmountLimit: m.AmountLimit,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		CategoryID:  budget.CategoryID,
		AmountLimit: budget.AmountLimit,
		StartDate:   budget.StartDate,
		EndDate:     budget.EndDate,
		CreatedAt:   budget.CreatedAt,
	}
}
