package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"eventhub/internal/cache"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// RatingService handles event ratings. Ratings are immutable once created;
// there is no update path.
type RatingService interface {
	Rate(ctx context.Context, eventID, userID uint, score int, comment string) (*model.Rating, error)
}

type ratingService struct {
	eventRepo  repository.EventRepository
	ratingRepo repository.RatingRepository
	cache      *cache.Client
}

// NewRatingService creates a new rating service.
func NewRatingService(
	eventRepo repository.EventRepository,
	ratingRepo repository.RatingRepository,
	cache *cache.Client,
) RatingService {
	return &ratingService{
		eventRepo:  eventRepo,
		ratingRepo: ratingRepo,
		cache:      cache,
	}
}

// Rate records a 1-5 score for an event, at most once per user per event.
func (s *ratingService) Rate(ctx context.Context, eventID, userID uint, score int, comment string) (*model.Rating, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if score < 1 || score > 5 {
		return nil, errors.NewValidationError("rating must be between 1 and 5")
	}

	// Friendly pre-check; the (user, event) unique index decides at commit.
	if _, err := s.ratingRepo.FindByUserAndEvent(ctx, userID, eventID); err == nil {
		return nil, errors.ErrDuplicateRating
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check rating: %w", err)
	}

	rating := &model.Rating{
		UserID:  userID,
		EventID: eventID,
		Score:   score,
		Comment: comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, errors.ErrDuplicateRating
		}
		return nil, fmt.Errorf("create rating: %w", err)
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("event:%d", eventID))
	return rating, nil
}
