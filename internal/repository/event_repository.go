package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// EventFilter narrows event listings. Zero values mean "no filter".
type EventFilter struct {
	Search     string
	CategoryID *uint
	Status     model.EventStatus
	Page       int
	PerPage    int
}

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context, filter EventFilter) ([]model.Event, int64, error)
	ListByCreator(ctx context.Context, userID uint) ([]model.Event, error)
	ListRegisteredBy(ctx context.Context, userID uint) ([]model.Event, error)
	UpdateStatus(ctx context.Context, id uint, status model.EventStatus) error
	DeleteCascade(ctx context.Context, id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event record.
func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Update updates an existing event record.
func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// FindByID finds an event by ID.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDWithDetails finds an event with its category, registrations and
// ratings preloaded.
func (r *eventRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Registrations").
		Preload("Ratings").
		First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns a page of events matching the filter, ordered by scheduled
// time ascending, together with the total match count.
func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]model.Event, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Event{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PerPage > 0 {
		query = query.Offset((filter.Page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	var events []model.Event
	if err := query.Order("scheduled_at asc").Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListByCreator lists events created by the given user.
func (r *eventRepository) ListByCreator(ctx context.Context, userID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("scheduled_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListRegisteredBy lists events the given user has registered for.
func (r *eventRepository) ListRegisteredBy(ctx context.Context, userID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Joins("JOIN event_registrations ON event_registrations.event_id = events.id").
		Where("event_registrations.user_id = ?", userID).
		Order("events.scheduled_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateStatus writes the cached status column for an event.
func (r *eventRepository) UpdateStatus(ctx context.Context, id uint, status model.EventStatus) error {
	return r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DeleteCascade removes an event and all its registrations, ratings and
// reminders in one transaction, all-or-nothing.
func (r *eventRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&model.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Reminder{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
