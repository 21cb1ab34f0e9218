package repository

import (
	"context"
	"fmt"

	"golang-trading-dashboard/internal/entity"

	"gorm.io/gorm"
)

// AccountRepository defines the read operations over the account snapshot.
type AccountRepository interface {
	FindCurrent(ctx context.Context) (*entity.Account, error)
}

// NewAccountRepository creates a new GORM-based account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

type accountRepository struct {
	db *gorm.DB
}

// FindCurrent returns the singleton account, or nil when none has been written yet.
func (r *accountRepository) FindCurrent(ctx context.Context) (*entity.Account, error) {
	var accounts []entity.Account
	if err := r.db.WithContext(ctx).Order("id ASC").Limit(1).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}
