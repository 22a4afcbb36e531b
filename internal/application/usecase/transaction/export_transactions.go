// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
)

// exportHeader is the fixed CSV column set; the column names are part of
// the export format.
var exportHeader = []string{
	"transaction_id",
	"transaction_date",
	"transaction_type",
	"amount",
	"note",
	"category",
	"account",
}

// ExportTransactionsInput represents the input for the CSV export.
type ExportTransactionsInput struct {
	UserID uuid.UUID
}

// ExportTransactionsOutput holds the rendered CSV document.
type ExportTransactionsOutput struct {
	CSV string
}

// ExportTransactionsUseCase renders a user's full ledger as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches every transaction for the user, newest first, and
// serializes them.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	rows, err := uc.transactionRepo.FindAllForExport(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	return &ExportTransactionsOutput{CSV: renderCSV(rows)}, nil
}

// renderCSV serializes the rows into the export format: every field
// double-quoted with embedded quotes doubled, dates as YYYY-MM-DD, amounts
// with exactly two decimals, rows joined by \n. Nil note/category/account
// render as empty fields. The header row is emitted unquoted.
func renderCSV(rows []*entity.TransactionWithNames) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeader, ","))

	for _, r := range rows {
		fields := []string{
			r.ID.String(),
			r.Date.Format("2006-01-02"),
			string(r.Type),
			r.Amount.StringFixed(2),
			strOrEmpty(r.Note),
			strOrEmpty(r.Category),
			strOrEmpty(r.Account),
		}
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return b.String()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
