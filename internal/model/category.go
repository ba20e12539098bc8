package model

// Category groups events by theme (workshop, party, conference, ...).
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`

	// Relations
	Events []Event `json:"events,omitempty" gorm:"foreignKey:CategoryID"`
}
