package models

import "gorm.io/gorm"

// Feedback is one submitted satisfaction rating with an optional comment.
type Feedback struct {
	gorm.Model
	Rating  int    `json:"rating" gorm:"not null;index"`
	Comment string `json:"comment" gorm:"type:text"`
}
