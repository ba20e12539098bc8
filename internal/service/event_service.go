package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"eventhub/internal/cache"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

const eventCacheTTL = 5 * time.Minute

// EventInput carries the caller-supplied fields for creating or editing an
// event. CategoryID may be nil for category-less events.
type EventInput struct {
	Title       string
	Description string
	ScheduledAt time.Time
	Location    string
	ImageURL    string
	CategoryID  *uint
}

// EventDetails is the detail view of an event: the event with its category,
// registrations and ratings preloaded, the mean rating score, and whether
// the viewing user (if any) is registered.
type EventDetails struct {
	Event        model.Event `json:"event"`
	AverageScore float64     `json:"average_score"`
	IsRegistered bool        `json:"is_registered"`
}

// EventPage is one page of an event listing.
type EventPage struct {
	Events  []model.Event `json:"events"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// EventService handles event lifecycle and read operations. Every read path
// recomputes the event status from the wall clock; the stored column is only
// a cache and is refreshed best-effort.
type EventService interface {
	Create(ctx context.Context, creatorID uint, input EventInput) (*model.Event, error)
	Update(ctx context.Context, eventID, actingUserID uint, input EventInput) (*model.Event, error)
	Delete(ctx context.Context, eventID, actingUserID uint) error
	Get(ctx context.Context, eventID uint, viewerID *uint) (*EventDetails, error)
	List(ctx context.Context, filter repository.EventFilter) (*EventPage, error)
	ListCreatedBy(ctx context.Context, userID uint) ([]model.Event, error)
	ListRegisteredBy(ctx context.Context, userID uint) ([]model.Event, error)
}

type eventService struct {
	eventRepo        repository.EventRepository
	categoryRepo     repository.CategoryRepository
	registrationRepo repository.RegistrationRepository
	ratingRepo       repository.RatingRepository
	cache            *cache.Client
}

// NewEventService creates a new event service.
func NewEventService(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	registrationRepo repository.RegistrationRepository,
	ratingRepo repository.RatingRepository,
	cache *cache.Client,
) EventService {
	return &eventService{
		eventRepo:        eventRepo,
		categoryRepo:     categoryRepo,
		registrationRepo: registrationRepo,
		ratingRepo:       ratingRepo,
		cache:            cache,
	}
}

func (s *eventService) cacheKey(id uint) string {
	return fmt.Sprintf("event:%d", id)
}

func (s *eventService) validateInput(ctx context.Context, input *EventInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" || input.ScheduledAt.IsZero() {
		return errors.NewValidationError("title, description and scheduled time are required")
	}
	if input.ScheduledAt.Before(time.Now().UTC()) {
		return errors.NewValidationError("scheduled time must be in the future")
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrCategoryNotFound
			}
			return fmt.Errorf("check category: %w", err)
		}
	}
	return nil
}

// refreshStatus recomputes the event's status and writes it back when the
// cached column has drifted. Write-back failures are ignored; the computed
// value is authoritative either way.
func (s *eventService) refreshStatus(ctx context.Context, event *model.Event) {
	status := model.ComputeStatus(event.ScheduledAt, time.Now().UTC())
	if status != event.Status {
		event.Status = status
		_ = s.eventRepo.UpdateStatus(ctx, event.ID, status)
	}
}

// Create publishes a new event owned by creatorID.
func (s *eventService) Create(ctx context.Context, creatorID uint, input EventInput) (*model.Event, error) {
	if err := s.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       input.Title,
		Description: input.Description,
		ScheduledAt: input.ScheduledAt,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		Status:      model.ComputeStatus(input.ScheduledAt, time.Now().UTC()),
		CreatedBy:   creatorID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update replaces an event's editable fields. Only the creator may edit.
func (s *eventService) Update(ctx context.Context, eventID, actingUserID uint, input EventInput) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event.CreatedBy != actingUserID {
		return nil, errors.ErrForbidden
	}

	if err := s.validateInput(ctx, &input); err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.ScheduledAt = input.ScheduledAt
	event.Location = input.Location
	event.ImageURL = input.ImageURL
	event.CategoryID = input.CategoryID
	event.Status = model.ComputeStatus(input.ScheduledAt, time.Now().UTC())

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(eventID))
	return event, nil
}

// Delete removes an event with all its registrations, ratings and reminders.
// Only the creator may delete.
func (s *eventService) Delete(ctx context.Context, eventID, actingUserID uint) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrEventNotFound
		}
		return fmt.Errorf("find event: %w", err)
	}
	if event.CreatedBy != actingUserID {
		return errors.ErrForbidden
	}

	if err := s.eventRepo.DeleteCascade(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(eventID))
	return nil
}

// Get retrieves an event detail view with caching. The viewer-specific
// registration flag is never cached.
func (s *eventService) Get(ctx context.Context, eventID uint, viewerID *uint) (*EventDetails, error) {
	var details *EventDetails

	if data, _ := s.cache.Get(ctx, s.cacheKey(eventID)); data != nil {
		var cached EventDetails
		if err := json.Unmarshal(data, &cached); err == nil {
			details = &cached
		}
	}

	if details == nil {
		event, err := s.eventRepo.FindByIDWithDetails(ctx, eventID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrEventNotFound
			}
			return nil, fmt.Errorf("find event: %w", err)
		}

		avg, err := s.ratingRepo.AverageForEvent(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("average rating: %w", err)
		}

		details = &EventDetails{Event: *event, AverageScore: avg}
		if payload, err := json.Marshal(details); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(eventID), payload, eventCacheTTL)
		}
	}

	s.refreshStatus(ctx, &details.Event)

	if viewerID != nil {
		if _, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, *viewerID); err == nil {
			details.IsRegistered = true
		}
	}
	return details, nil
}

// List returns a filtered page of events with freshly computed statuses.
func (s *eventService) List(ctx context.Context, filter repository.EventFilter) (*EventPage, error) {
	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for i := range events {
		s.refreshStatus(ctx, &events[i])
	}
	return &EventPage{
		Events:  events,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// ListCreatedBy lists the events a user has published.
func (s *eventService) ListCreatedBy(ctx context.Context, userID uint) ([]model.Event, error) {
	events, err := s.eventRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list created events: %w", err)
	}
	for i := range events {
		s.refreshStatus(ctx, &events[i])
	}
	return events, nil
}

// ListRegisteredBy lists the events a user has registered for.
func (s *eventService) ListRegisteredBy(ctx context.Context, userID uint) ([]model.Event, error) {
	events, err := s.eventRepo.ListRegisteredBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}
	for i := range events {
		s.refreshStatus(ctx, &events[i])
	}
	return events, nil
}
