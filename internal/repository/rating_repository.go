package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// RatingRepository defines rating persistence operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	FindByUserAndEvent(ctx context.Context, userID, eventID uint) (*model.Rating, error)
	AverageForEvent(ctx context.Context, eventID uint) (float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) FindByUserAndEvent(ctx context.Context, userID, eventID uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}


// AverageForEvent returns the mean score for an event, 0 when unrated.
func (r *ratingRepository) AverageForEvent(ctx context.Context, eventID uint) (float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("event_id = ?", eventID).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
