// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// FindDefaultOrCreate returns the user's earliest-created account,
	// creating the default cash account if none exists. The operation is
	// idempotent and safe under concurrent first writes: implementations
	// must use a conflict-tolerant upsert, not read-then-insert.
	FindDefaultOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Account, error)
}
