package course

import "gorm.io/gorm"

// Module is an ordered section of the course. Position is dense and
// zero-based across all modules.
type Module struct {
	gorm.Model
	Name     string   `json:"name" gorm:"not null"`
	Position int      `json:"position" gorm:"index;default:0"`
	Lessons  []Lesson `json:"lessons" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}
