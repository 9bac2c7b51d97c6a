package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
)

// RatingSummary aggregates the ratings of one store.
type RatingSummary struct {
	Average decimal.Decimal `json:"average"`
	Count   int64           `json:"count"`
}

// RatingRepository defines rating persistence operations.
type RatingRepository interface {
	Upsert(ctx context.Context, rating *model.Rating) (created bool, err error)
	ListByStore(ctx context.Context, storeID uint) ([]model.Rating, error)
	SummaryByStore(ctx context.Context, storeID uint) (*RatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository builds a GORM-backed repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating as a single INSERT ... ON DUPLICATE KEY UPDATE so
// concurrent submissions for the same (user, store) pair cannot create two
// rows. MySQL reports one affected row for an insert and two for an in-place
// value change, which is how created is derived.
func (r *ratingRepository) Upsert(ctx context.Context, rating *model.Rating) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ratingRepository) ListByStore(ctx context.Context, storeID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// SummaryByStore computes average and count in one query; a store with no
// ratings yields a zero average.
func (r *ratingRepository) SummaryByStore(ctx context.Context, storeID uint) (*RatingSummary, error) {
	var summary RatingSummary
	row := r.db.WithContext(ctx).Model(&model.Rating{}).
		Select("COALESCE(AVG(rating), 0), COUNT(*)").
		Where("store_id = ?", storeID).Row()
	if err := row.Scan(&summary.Average, &summary.Count); err != nil {
		return nil, err
	}
	return &summary, nil
}
