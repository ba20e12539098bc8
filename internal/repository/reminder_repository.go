package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// ReminderRepository defines reminder persistence operations.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *model.Reminder) error
	ListByUser(ctx context.Context, userID uint) ([]model.Reminder, error)
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("remind_at asc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}
