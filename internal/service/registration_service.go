package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"eventhub/internal/cache"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// RegistrationInput carries the contact fields captured for a registration.
type RegistrationInput struct {
	Name   string
	Email  string
	Phone  string
	Others string
}

// RegistrationService handles event registration. userID is nil for guest
// registrations; the (event, email) uniqueness applies either way.
type RegistrationService interface {
	Register(ctx context.Context, eventID uint, userID *uint, input RegistrationInput) (*model.EventRegistration, error)
}

type registrationService struct {
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
	cache            *cache.Client
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	eventRepo repository.EventRepository,
	registrationRepo repository.RegistrationRepository,
	cache *cache.Client,
) RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		cache:            cache,
	}
}

// Register creates a registration for an event. The duplicate pre-checks
// give a friendly error on the common path; under concurrent identical
// calls the composite unique indexes reject the loser at commit and the
// driver error is mapped to the same ErrDuplicateRegistration.
func (s *registrationService) Register(ctx context.Context, eventID uint, userID *uint, input RegistrationInput) (*model.EventRegistration, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" {
		return nil, errors.NewValidationError("name and email are required")
	}

	if userID != nil {
		if _, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, *userID); err == nil {
			return nil, errors.ErrDuplicateRegistration
		} else if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check registration: %w", err)
		}
	}
	if _, err := s.registrationRepo.FindByEventAndEmail(ctx, eventID, input.Email); err == nil {
		return nil, errors.ErrDuplicateRegistration
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check registration: %w", err)
	}

	registration := &model.EventRegistration{
		EventID: eventID,
		UserID:  userID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Others:  input.Others,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, errors.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("event:%d", eventID))
	return registration, nil
}
