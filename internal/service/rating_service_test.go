package service

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
)

func TestRatingService_Rate(t *testing.T) {
	tests := []struct {
		name             string
		eventID          uint
		userID           uint
		score            int
		setupMock        func(*MockEventRepository, *MockRatingRepository)
		expectedError    error
		expectValidation bool
	}{
		{
			name:    "minimum score accepted",
			eventID: 10,
			userID:  5,
			score:   1,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(10)).Return(&model.Event{ID: 10}, nil)
				mRating.On("FindByUserAndEvent", mock.Anything, uint(5), uint(10)).Return(nil, gorm.ErrRecordNotFound)
				mRating.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).Return(nil)
			},
		},
		{
			name:    "maximum score accepted",
			eventID: 10,
			userID:  5,
			score:   5,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(10)).Return(&model.Event{ID: 10}, nil)
				mRating.On("FindByUserAndEvent", mock.Anything, uint(5), uint(10)).Return(nil, gorm.ErrRecordNotFound)
				mRating.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).Return(nil)
			},
		},
		{
			name:    "score below range",
			eventID: 10,
			userID:  5,
			score:   0,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(10)).Return(&model.Event{ID: 10}, nil)
			},
			expectValidation: true,
		},
		{
			name:    "score above range",
			eventID: 10,
			userID:  5,
			score:   6,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(10)).Return(&model.Event{ID: 10}, nil)
			},
			expectValidation: true,
		},
		{
			name:    "event does not exist",
			eventID: 99,
			userID:  5,
			score:   3,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEventNotFound,
		},
		{
			name:    "user already rated the event",
			eventID: 10,
			userID:  5,
			score:   4,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(10)).Return(&model.Event{ID: 10}, nil)
				mRating.On("FindByUserAndEvent", mock.Anything, uint(5), uint(10)).
					Return(&model.Rating{UserID: 5, EventID: 10, Score: 2}, nil)
			},
			expectedError: apperrors.ErrDuplicateRating,
		},
		{
			name:    "duplicate key rejected at commit",
			eventID: 10,
			userID:  5,
			score:   4,
			setupMock: func(mEvent *MockEventRepository, mRating *MockRatingRepository) {
				mEvent.On("FindByID", mock.Anything, uint(10)).Return(&model.Event{ID: 10}, nil)
				mRating.On("FindByUserAndEvent", mock.Anything, uint(5), uint(10)).Return(nil, gorm.ErrRecordNotFound)
				mRating.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).
					Return(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: apperrors.ErrDuplicateRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEventRepo := new(MockEventRepository)
			mockRatingRepo := new(MockRatingRepository)
			tt.setupMock(mockEventRepo, mockRatingRepo)

			service := NewRatingService(mockEventRepo, mockRatingRepo, nil)
			rating, err := service.Rate(context.Background(), tt.eventID, tt.userID, tt.score, "nice event")

			switch {
			case tt.expectValidation:
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Nil(t, rating)
			case tt.expectedError != nil:
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, rating)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, rating)
				assert.Equal(t, tt.score, rating.Score)
				assert.Equal(t, tt.userID, rating.UserID)
			}

			mockEventRepo.AssertExpectations(t)
			mockRatingRepo.AssertExpectations(t)
		})
	}
}
