package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendlens/backend/internal/application/usecase/report"
	"github.com/spendlens/backend/internal/domain/entity"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// GetWindowRows returns the user's transactions in the half-open window
// [start, end), oldest first. The fold downstream preserves this order in
// its category and daily groupings.
func (r *reportRepository) GetWindowRows(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]report.Row, error) {
	var rows []struct {
		Amount       decimal.Decimal `gorm:"column:amount"`
		Type         string          `gorm:"column:type"`
		Date         time.Time       `gorm:"column:date"`
		CategoryName *string         `gorm:"column:category_name"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT t.amount, t.type, t.date, c.name AS category_name
			FROM transactions t
			JOIN accounts a ON a.id = t.account_id
			LEFT JOIN categories c ON c.id = t.category_id
			WHERE a.user_id = ?
				AND t.date >= ?
				AND t.date < ?
			ORDER BY t.date ASC, t.created_at ASC
		`, userID, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load report rows: %w", err)
	}

	out := make([]report.Row, len(rows))
	for i, row := range rows {
		out[i] = report.Row{
			Amount:       row.Amount,
			Type:         entity.TransactionType(row.Type),
			Date:         row.Date,
			CategoryName: row.CategoryName,
		}
	}
	return out, nil
}
