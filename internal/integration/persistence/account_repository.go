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

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindDefaultOrCreate returns the user's earliest-created account, creating
// the default cash account first if the user has none. Concurrent first
// calls race on the insert; the (user_id, name) unique index plus
// DO NOTHING means exactly one row wins and the re-read sees it.
func (r *accountRepository) FindDefaultOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&accountModel).Error
	if err == nil {
		return accountModel.ToEntity(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	defaultAccount := model.AccountFromEntity(entity.NewDefaultAccount(userID))
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(defaultAccount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create default account: %w", err)
	}

	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&accountModel).Error
	if err != nil {
		return nil, fmt.Errorf("failed to re-read account after create: %w", err)
	}
	return accountModel.ToEntity(), nil
}
