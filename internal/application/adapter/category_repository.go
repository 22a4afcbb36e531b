// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// GetOrCreate looks up the category named name for the user, inserting
	// it with fallbackType if absent, and returns it either way. Names are
	// case-sensitive and unique per user. The operation is idempotent and
	// must tolerate concurrent first writes for the same (user, name) via
	// a unique-constraint upsert.
	GetOrCreate(ctx context.Context, userID uuid.UUID, name string, fallbackType entity.CategoryType) (*entity.Category, error)
}
