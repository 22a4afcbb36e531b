package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
	"github.com/spendlens/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Create(transactionModel).Error
}

// transactionRow is the scan target for listing and export queries.
type transactionRow struct {
	ID       uuid.UUID       `gorm:"column:id"`
	Amount   decimal.Decimal `gorm:"column:amount"`
	Type     string          `gorm:"column:type"`
	Date     time.Time       `gorm:"column:date"`
	Note     *string         `gorm:"column:note"`
	Category *string         `gorm:"column:category"`
	Account  *string         `gorm:"column:account"`
}

func (row transactionRow) toEntity() *entity.TransactionWithNames {
	return &entity.TransactionWithNames{
		ID:       row.ID,
		Amount:   row.Amount,
		Type:     entity.TransactionType(row.Type),
		Date:     row.Date,
		Note:     row.Note,
		Category: row.Category,
		Account:  row.Account,
	}
}

// FindByFilter retrieves a user's transactions joined with category names,
// filtered and ordered per the filter. Ownership is scoped through the
// account join; transactions carry no user id of their own.
func (r *transactionRepository) FindByFilter(
	ctx context.Context,
	filter adapter.TransactionFilter,
) ([]*entity.TransactionWithNames, error) {
	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select("t.id, t.amount, t.type, t.date, t.note, c.name AS category, a.name AS account").
		Joins("JOIN accounts a ON a.id = t.account_id").
		Joins("LEFT JOIN categories c ON c.id = t.category_id").
		Where("a.user_id = ?", filter.UserID)

	if filter.Type != nil {
		query = query.Where("t.type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("c.name = ?", filter.Category)
	}
	if filter.Search != "" {
		// LOWER + LIKE instead of ILIKE keeps the query portable.
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(t.note) LIKE LOWER(?) OR LOWER(c.name) LIKE LOWER(?)", pattern, pattern)
	}

	switch filter.SortBy {
	case adapter.TransactionSortAmount:
		query = query.Order("t.amount DESC")
	default:
		query = query.Order("t.date DESC, t.created_at DESC")
	}

	var rows []transactionRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*entity.TransactionWithNames, len(rows))
	for i, row := range rows {
		out[i] = row.toEntity()
	}
	return out, nil
}

// FindAllForExport retrieves every transaction for the user joined with
// category and account names, newest first.
func (r *transactionRepository) FindAllForExport(
	ctx context.Context,
	userID uuid.UUID,
) ([]*entity.TransactionWithNames, error) {
	var rows []transactionRow
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("t.id, t.amount, t.type, t.date, t.note, c.name AS category, a.name AS account").
		Joins("JOIN accounts a ON a.id = t.account_id").
		Joins("LEFT JOIN categories c ON c.id = t.category_id").
		Where("a.user_id = ?", userID).
		Order("t.date DESC, t.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	out := make([]*entity.TransactionWithNames, len(rows))
	for i, row := range rows {
		out[i] = row.toEntity()
	}
	return out, nil
}
