// Package error defines domain-specific errors for the application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned for unknown users and wrong
	// passwords alike, to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyRegistered is returned when registering with an email
	// that already has an account.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrWeakPassword is returned when a password does not meet the minimum
	// requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrMissingToken is returned when no bearer token is supplied.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingRequiredFields AuthErrorCode = "AUT-010001"
	ErrCodeWeakPassword          AuthErrorCode = "AUT-010002"

	// Credential errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-020001"
	ErrCodeMissingToken       AuthErrorCode = "AUT-020002"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-020003"

	// Conflict errors (03XXXX)
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUT-030001"

	// Rate limiting (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-040001"

	// Internal errors (99XXXX)
	ErrCodeAuthInternalError AuthErrorCode = "AUT-990001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
