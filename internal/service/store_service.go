package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/cache"
	apperrors "github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/errors"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/repository"
)

const (
	storeListCacheKey = "stores:list"
	storeListCacheTTL = time.Minute
)

// StoreDetail is a store together with its rating summary.
type StoreDetail struct {
	model.Store
	RatingSummary repository.RatingSummary `json:"rating_summary"`
}

// StoreService exposes store listing and creation.
type StoreService interface {
	Create(ctx context.Context, name, email, address string) (*model.Store, error)
	List(ctx context.Context) ([]model.Store, error)
	Get(ctx context.Context, id uint) (*StoreDetail, error)
}

type storeService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	cache      *cache.Client
}

// NewStoreService builds a StoreService with repositories and cache.
func NewStoreService(storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository, cache *cache.Client) StoreService {
	return &storeService{storeRepo: storeRepo, ratingRepo: ratingRepo, cache: cache}
}

// Create persists a new store and invalidates the listing cache. Duplicate
// names are permitted.
func (s *storeService) Create(ctx context.Context, name, email, address string) (*model.Store, error) {
	if name == "" {
		return nil, apperrors.ErrStoreNameRequired
	}

	store := &model.Store{
		Name:    name,
		Email:   email,
		Address: address,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.cache.Delete(ctx, storeListCacheKey)
	return store, nil
}

// List returns every store ordered by name ascending, cache-aside.
func (s *storeService) List(ctx context.Context) ([]model.Store, error) {
	var cached []model.Store
	if s.cache.GetJSON(ctx, storeListCacheKey, &cached) {
		return cached, nil
	}

	stores, err := s.storeRepo.ListByName(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, storeListCacheKey, stores, storeListCacheTTL)
	return stores, nil
}

// Get returns one store with its rating average and count.
func (s *storeService) Get(ctx context.Context, id uint) (*StoreDetail, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStoreNotFound
		}
		return nil, err
	}

	summary, err := s.ratingRepo.SummaryByStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}

	return &StoreDetail{Store: *store, RatingSummary: *summary}, nil
}
