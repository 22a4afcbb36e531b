// Package transaction contains transaction-related use cases.
package transaction

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens/backend/internal/domain/entity"
)

func str(s string) *string { return &s }

func exportRow(id uuid.UUID, amount string, txType entity.TransactionType, date time.Time, note, category, account *string) *entity.TransactionWithNames {
	return &entity.TransactionWithNames{
		ID:       id,
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Date:     date,
		Note:     note,
		Category: category,
		Account:  account,
	}
}

func TestRenderCSV(t *testing.T) {
	date := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	t.Run("empty ledger renders header only", func(t *testing.T) {
		got := renderCSV(nil)
		want := "transaction_id,transaction_date,transaction_type,amount,note,category,account"
		if got != want {
			t.Errorf("csv = %q, want %q", got, want)
		}
	})

	t.Run("fields are quoted and formatted", func(t *testing.T) {
		id := uuid.New()
		got := renderCSV([]*entity.TransactionWithNames{
			exportRow(id, "49.5", entity.TransactionTypeExpense, date, str("groceries"), str("Food"), str("Default Account")),
		})

		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		want := `"` + id.String() + `","2024-03-05","expense","49.50","groceries","Food","Default Account"`
		if lines[1] != want {
			t.Errorf("row = %q, want %q", lines[1], want)
		}
	})

	t.Run("embedded quotes are doubled", func(t *testing.T) {
		got := renderCSV([]*entity.TransactionWithNames{
			exportRow(uuid.New(), "10", entity.TransactionTypeExpense, date, str(`He said "hi"`), nil, nil),
		})
		if !strings.Contains(got, `"He said ""hi"""`) {
			t.Errorf("csv does not escape quotes: %q", got)
		}
	})

	t.Run("nil fields render as empty strings", func(t *testing.T) {
		got := renderCSV([]*entity.TransactionWithNames{
			exportRow(uuid.New(), "10", entity.TransactionTypeIncome, date, nil, nil, nil),
		})
		if strings.Contains(got, "null") {
			t.Errorf("csv renders literal null: %q", got)
		}
		if !strings.HasSuffix(got, `"","",""`) {
			t.Errorf("csv should end with three empty fields: %q", got)
		}
	})

	t.Run("round trip through a standard CSV reader", func(t *testing.T) {
		id1, id2 := uuid.New(), uuid.New()
		rows := []*entity.TransactionWithNames{
			exportRow(id1, "1234.567", entity.TransactionTypeExpense, date, str(`note with, comma and "quotes"`), str("Food"), str("Default Account")),
			exportRow(id2, "200", entity.TransactionTypeIncome, date.AddDate(0, 0, 1), nil, str("Salary"), str("Default Account")),
		}

		reader := csv.NewReader(strings.NewReader(renderCSV(rows)))
		records, err := reader.ReadAll()
		if err != nil {
			t.Fatalf("exported csv does not parse: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header + 2 rows, got %d records", len(records))
		}

		first := records[1]
		if first[0] != id1.String() {
			t.Errorf("id = %q, want %q", first[0], id1.String())
		}
		if first[1] != "2024-03-05" {
			t.Errorf("date = %q, want 2024-03-05", first[1])
		}
		if first[3] != "1234.57" {
			t.Errorf("amount = %q, want 1234.57", first[3])
		}
		if first[4] != `note with, comma and "quotes"` {
			t.Errorf("note = %q, quotes not unescaped", first[4])
		}

		second := records[2]
		if second[4] != "" {
			t.Errorf("nil note round-tripped as %q, want empty", second[4])
		}
		if second[3] != "200.00" {
			t.Errorf("amount = %q, want 200.00", second[3])
		}
	})
}
