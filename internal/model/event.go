package model

import "time"

// EventStatus represents the derived temporal status of an event.
type EventStatus string

const (
	StatusUpcoming EventStatus = "upcoming"
	StatusOngoing  EventStatus = "ongoing"
	StatusPast     EventStatus = "past"
)

// Event represents a scheduled activity published by a user.
//
// The stored Status column is a cache of ComputeStatus and is refreshed on
// every read path; it must never be presented without recomputation.
type Event struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"size:255;not null;index"`
	Description string      `json:"description" gorm:"type:text;not null"`
	ScheduledAt time.Time   `json:"scheduled_at" gorm:"not null;index"`
	Location    string      `json:"location,omitempty" gorm:"size:255"`
	ImageURL    string      `json:"image_url,omitempty" gorm:"size:255"`
	CategoryID  *uint       `json:"category_id,omitempty" gorm:"index"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index"`
	CreatedBy   uint        `json:"created_by" gorm:"not null;index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relations
	Creator       User                `json:"-" gorm:"foreignKey:CreatedBy"`
	Category      *Category           `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Registrations []EventRegistration `json:"registrations,omitempty" gorm:"foreignKey:EventID"`
	Ratings       []Rating            `json:"ratings,omitempty" gorm:"foreignKey:EventID"`
	Reminders     []Reminder          `json:"reminders,omitempty" gorm:"foreignKey:EventID"`
}
