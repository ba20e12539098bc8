package model

import "time"

// User represents a registered platform user.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Events        []Event             `json:"events,omitempty" gorm:"foreignKey:CreatedBy"`
	Registrations []EventRegistration `json:"registrations,omitempty" gorm:"foreignKey:UserID"`
	Ratings       []Rating            `json:"ratings,omitempty" gorm:"foreignKey:UserID"`
	Reminders     []Reminder          `json:"reminders,omitempty" gorm:"foreignKey:UserID"`
}
