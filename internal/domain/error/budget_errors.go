// Package error defines domain-specific errors for the application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrMissingCategoryName is returned when a budget is created without a
	// category name.
	ErrMissingCategoryName = errors.New("category_name is required")

	// ErrInvalidAmountLimit is returned when the amount limit is negative.
	ErrInvalidAmountLimit = errors.New("amount_limit must not be negative")

	// ErrInvalidBudgetPeriod is returned when end_date precedes start_date.
	ErrInvalidBudgetPeriod = errors.New("end_date must not be before start_date")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCategoryName BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidAmountLimit  BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BDG-010003"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
