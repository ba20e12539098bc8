package model

import "time"

// Reminder is a user-scoped note to be alerted before an event. It is a
// durable record only; delivery belongs to an external subsystem.
type Reminder struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	EventID   uint      `json:"event_id" gorm:"not null;index"`
	RemindAt  time.Time `json:"remind_at" gorm:"not null"`
	Message   string    `json:"message,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Event Event `json:"-" gorm:"foreignKey:EventID"`
}
