// Package error defines domain-specific errors for the application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the type is neither
	// expense nor income.
	ErrInvalidTransactionType = errors.New("transaction type must be 'expense' or 'income'")

	// ErrInvalidAmount is returned when the amount is missing, zero, or
	// negative.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrMissingDate is returned when no transaction date is supplied.
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidDateFormat is returned when a date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010002"
	ErrCodeMissingDate            TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidDateFormat      TransactionErrorCode = "TXN-010004"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
