// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/google/uuid"
)

// TokenClaims represents the verified identity carried by an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService defines the interface for access token operations. The rest
// of the system trusts the user id it returns unconditionally; every query
// is scoped by that id and nothing else.
type TokenService interface {
	// GenerateToken issues a signed access token for the user.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies a token and returns its claims.
	ValidateToken(token string) (*TokenClaims, error)
}
