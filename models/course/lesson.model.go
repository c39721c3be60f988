package course

import "gorm.io/gorm"

// Lesson belongs to exactly one module. VideoIframe holds the raw embed
// markup and is treated as opaque text. Position is dense and zero-based
// within the owning module.
type Lesson struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	VideoIframe string `json:"video_iframe" gorm:"type:text"`
	Position    int    `json:"position" gorm:"default:0"`
}
