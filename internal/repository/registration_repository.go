package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// RegistrationRepository defines event registration persistence operations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.EventRegistration) error
	FindByEventAndUser(ctx context.Context, eventID, userID uint) (*model.EventRegistration, error)
	FindByEventAndEmail(ctx context.Context, eventID uint, email string) (*model.EventRegistration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *model.EventRegistration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID uint) (*model.EventRegistration, error) {
	var registration model.EventRegistration
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&registration).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) FindByEventAndEmail(ctx context.Context, eventID uint, email string) (*model.EventRegistration, error) {
	var registration model.EventRegistration
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND email = ?", eventID, email).
		First(&registration).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

