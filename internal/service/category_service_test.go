package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
)

func TestCategoryService_Create(t *testing.T) {
	tests := []struct {
		name             string
		categoryName     string
		setupMock        func(*MockCategoryRepository)
		expectedError    error
		expectValidation bool
	}{
		{
			name:         "successful creation",
			categoryName: "Hackathon",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Hackathon").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
		},
		{
			name:         "name is trimmed before use",
			categoryName: "  Hackathon  ",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Hackathon").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
		},
		{
			name:             "blank name",
			categoryName:     "   ",
			setupMock:        func(m *MockCategoryRepository) {},
			expectValidation: true,
		},
		{
			name:         "duplicate name",
			categoryName: "Workshop",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Workshop").Return(&model.Category{ID: 1, Name: "Workshop"}, nil)
			},
			expectedError: apperrors.ErrDuplicateCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			tt.setupMock(mockRepo)

			service := NewCategoryService(mockRepo)
			category, err := service.Create(context.Background(), tt.categoryName)

			switch {
			case tt.expectValidation:
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Nil(t, category)
			case tt.expectedError != nil:
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, category)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, category)
				assert.Equal(t, "Hackathon", category.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

		service := NewCategoryService(mockRepo)
		assert.NoError(t, service.Delete(context.Background(), 3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("category not found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		service := NewCategoryService(mockRepo)
		assert.Equal(t, apperrors.ErrCategoryNotFound, service.Delete(context.Background(), 99))
		mockRepo.AssertExpectations(t)
	})
}
