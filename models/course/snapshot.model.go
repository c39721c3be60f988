package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Snapshot is a named, immutable copy of the whole module/lesson tree.
// Entity ids are stripped on capture, only names, titles, media and
// positions survive.
type Snapshot struct {
	gorm.Model
	Name string         `json:"name" gorm:"not null"`
	Data datatypes.JSON `json:"data"`
}

// SnapshotTree is the persisted payload shape inside Snapshot.Data.
type SnapshotTree struct {
	Modules []SnapshotModule `json:"modules"`
}

type SnapshotModule struct {
	Name     string           `json:"name"`
	Position int              `json:"position"`
	Lessons  []SnapshotLesson `json:"lessons"`
}

type SnapshotLesson struct {
	Title       string `json:"title"`
	VideoIframe string `json:"video_iframe"`
	Position    int    `json:"position"`
}
