package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
)

// StoreRepository defines store persistence operations.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	FindByID(ctx context.Context, id uint) (*model.Store, error)
	ListByName(ctx context.Context) ([]model.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository builds a GORM-backed repository.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) FindByID(ctx context.Context, id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// ListByName returns every store ordered by name ascending.
func (r *storeRepository) ListByName(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
