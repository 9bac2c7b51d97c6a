package service

import (
	"context"
	"fmt"

	apperrors "github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/errors"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/repository"
)

// RatingService handles rating submission and retrieval.
type RatingService interface {
	Submit(ctx context.Context, userID, storeID uint, value int) (rating *model.Rating, created bool, err error)
	ListForStore(ctx context.Context, storeID uint) ([]model.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
}

// NewRatingService creates a new rating service.
func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// Submit records a rating for a (user, store) pair. A first submission creates
// the row, a resubmission overwrites the value in place; the write is one
// atomic upsert either way.
func (s *ratingService) Submit(ctx context.Context, userID, storeID uint, value int) (*model.Rating, bool, error) {
	if value < 1 || value > 5 {
		return nil, false, apperrors.ErrInvalidRating
	}

	rating := &model.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}
	created, err := s.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		return nil, false, fmt.Errorf("upsert rating: %w", err)
	}
	return rating, created, nil
}

// ListForStore returns all ratings for a store, in no particular order.
func (s *ratingService) ListForStore(ctx context.Context, storeID uint) ([]model.Rating, error) {
	return s.ratingRepo.ListByStore(ctx, storeID)
}
