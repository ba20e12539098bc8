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

func TestUserService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "test@example.com"}, nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		user, err := service.Get(context.Background(), 99)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		service := NewUserService(mockRepo, nil)
		assert.NoError(t, service.Delete(context.Background(), 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		assert.Equal(t, apperrors.ErrUserNotFound, service.Delete(context.Background(), 99))
	})
}
