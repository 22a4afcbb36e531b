package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spendlens/backend/internal/application/adapter"
	"github.com/spendlens/backend/internal/domain/entity"
	"github.com/spendlens/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// GetOrCreate looks up the category by (user, name), inserting it with
// fallbackType when absent. The insert uses DO NOTHING against the
// (user_id, name) unique index, so a concurrent first write for the same
// name leaves one row and both callers see it on the re-read. An existing
// category's type is never changed.
func (r *categoryRepository) GetOrCreate(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	fallbackType entity.CategoryType,
) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&categoryModel).Error
	if err == nil {
		return categoryModel.ToEntity(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	fresh := model.CategoryFromEntity(entity.NewCategory(userID, name, fallbackType))
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(fresh).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	err = r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&categoryModel).Error
	if err != nil {
		return nil, fmt.Errorf("failed to re-read category after create: %w", err)
	}
	return categoryModel.ToEntity(), nil
}
