package model

import "time"

// EventRegistration records intent to attend an event. UserID is nullable so
// guest registrations survive deletion of the user they were captured for;
// registrations linked to a user are removed with that user.
//
// Uniqueness is backed by two composite indexes: one per (event, user) pair
// and one per (event, email) regardless of user linkage. MySQL permits
// multiple NULL user_id rows under uniq_event_user, which is exactly the
// guest-registration semantics wanted here.
type EventRegistration struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	EventID      uint      `json:"event_id" gorm:"not null;uniqueIndex:uniq_event_user;uniqueIndex:uniq_event_email"`
	UserID       *uint     `json:"user_id,omitempty" gorm:"uniqueIndex:uniq_event_user"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:120;not null;uniqueIndex:uniq_event_email"`
	Phone        string    `json:"phone,omitempty" gorm:"size:15"`
	Others       string    `json:"others,omitempty" gorm:"type:text"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`

	// Relations
	Event Event `json:"-" gorm:"foreignKey:EventID"`
	User  *User `json:"-" gorm:"foreignKey:UserID"`
}
