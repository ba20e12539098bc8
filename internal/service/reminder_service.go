package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// ReminderService records reminder requests. Reminders are durable records
// only; delivering them is an external subsystem's job.
type ReminderService interface {
	Set(ctx context.Context, eventID, userID uint, remindAt time.Time, message string) (*model.Reminder, error)
	ListForUser(ctx context.Context, userID uint) ([]model.Reminder, error)
}

type reminderService struct {
	eventRepo    repository.EventRepository
	reminderRepo repository.ReminderRepository
}

// NewReminderService creates a new reminder service.
func NewReminderService(eventRepo repository.EventRepository, reminderRepo repository.ReminderRepository) ReminderService {
	return &reminderService{
		eventRepo:    eventRepo,
		reminderRepo: reminderRepo,
	}
}

// Set records a reminder. The reminder time must strictly precede the
// event's scheduled time and must not already be in the past.
func (s *reminderService) Set(ctx context.Context, eventID, userID uint, remindAt time.Time, message string) (*model.Reminder, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if !remindAt.Before(event.ScheduledAt) {
		return nil, errors.ErrReminderAfterEvent
	}
	if remindAt.Before(time.Now().UTC()) {
		return nil, errors.ErrReminderInPast
	}

	reminder := &model.Reminder{
		UserID:   userID,
		EventID:  eventID,
		RemindAt: remindAt,
		Message:  message,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

// ListForUser lists a user's reminders ordered by reminder time.
func (s *reminderService) ListForUser(ctx context.Context, userID uint) ([]model.Reminder, error) {
	return s.reminderRepo.ListByUser(ctx, userID)
}
