package dto

import (
	"github.com/spendlens/backend/internal/application/usecase/transaction"
	"github.com/spendlens/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// transaction. Amount is a pointer so a missing amount is distinguishable
// from zero; both are rejected downstream.
type CreateTransactionRequest struct {
	Type        string   `json:"type" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required"`
}

// TransactionResponse represents one transaction in listing and creation
// responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ToCreateTransactionResponse converts a CreateTransactionOutput to a TransactionResponse DTO.
func ToCreateTransactionResponse(output *transaction.CreateTransactionOutput) TransactionResponse {
	amount, _ := output.Amount.Float64()
	return TransactionResponse{
		ID:          output.ID.String(),
		Amount:      amount,
		Type:        string(output.Type),
		Date:        output.Date.Format("2006-01-02"),
		Description: output.Description,
		Category:    output.Category,
	}
}

// ToTransactionResponses converts joined transaction rows to DTOs. Null
// note and category render as empty strings; the result is never nil.
func ToTransactionResponses(rows []*entity.TransactionWithNames) []TransactionResponse {
	out := make([]TransactionResponse, len(rows))
	for i, row := range rows {
		amount, _ := row.Amount.Float64()
		out[i] = TransactionResponse{
			ID:          row.ID.String(),
			Amount:      amount,
			Type:        string(row.Type),
			Date:        row.Date.Format("2006-01-02"),
			Description: stringOrEmpty(row.Note),
			Category:    stringOrEmpty(row.Category),
		}
	}
	return out
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
