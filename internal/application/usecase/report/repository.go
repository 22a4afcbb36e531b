// Package report contains monthly and yearly report use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/domain/entity"
)

// Row is one in-window transaction as fetched for report aggregation.
type Row struct {
	Amount       decimal.Decimal
	Type         entity.TransactionType
	Date         time.Time
	CategoryName *string
}

// ReportRepository defines the interface for report data operations.
type ReportRepository interface {
	// GetWindowRows returns the user's transactions in the half-open
	// window [start, end), in storage order.
	GetWindowRows(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
	) ([]Row, error)
}
