package model

import "time"

// Rating is a 1-5 score a user leaves for an event, at most one per
// (user, event) pair. Ratings are immutable once created.
type Rating struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  uint      `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_event_rating"`
	EventID uint      `json:"event_id" gorm:"not null;uniqueIndex:uniq_user_event_rating"`
	Score   int       `json:"score" gorm:"not null;check:chk_rating_score,score >= 1 AND score <= 5"`
	Comment string    `json:"comment,omitempty" gorm:"type:text"`
	RatedAt time.Time `json:"rated_at" gorm:"autoCreateTime"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Event Event `json:"-" gorm:"foreignKey:EventID"`
}
