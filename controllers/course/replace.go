package controllers

import (
	courseModels "courseadmin/models/course"
	"courseadmin/ordering"
	"fmt"

	"gorm.io/gorm"
)

// ReplaceAllData wipes the whole module/lesson tree and rebuilds it from the
// flattened records. This is the JSON import path: module order is the
// first-seen order of module names, lesson order follows record order, and
// positions are derived from those orders alone — never trusted from the
// input.
//
// Callers run it inside a transaction so a failed recreate rolls back the
// wipe instead of leaving the store empty.
func ReplaceAllData(tx *gorm.DB, records []ordering.ImportRecord) error {
	if err := ordering.ValidateRecords(records); err != nil {
		return err
	}
	return ReplaceAllGroups(tx, ordering.GroupRecords(records))
}

// ReplaceAllGroups is the shared backend of import and snapshot restore:
// both feed their source through the same wipe-and-recreate sequence, so
// equivalent input shapes get byte-identical position assignments. Unlike
// the flat record format, a group can carry zero lessons, which is how a
// restored snapshot keeps its empty modules.
func ReplaceAllGroups(tx *gorm.DB, groups []ordering.ModuleGroup) error {
	// Lessons first, then modules, so the FK constraint is never violated.
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&courseModels.Lesson{}).Error; err != nil {
		return fmt.Errorf("wipe lessons: %w", err)
	}
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&courseModels.Module{}).Error; err != nil {
		return fmt.Errorf("wipe modules: %w", err)
	}

	// Each module is created strictly before its lessons.
	for mi, group := range groups {
		module := courseModels.Module{Name: group.Name, Position: mi}
		if err := tx.Create(&module).Error; err != nil {
			return fmt.Errorf("create module %q: %w", group.Name, err)
		}

		for li, entry := range group.Lessons {
			lesson := courseModels.Lesson{
				ModuleID:    module.ID,
				Title:       entry.Title,
				VideoIframe: entry.VideoIframe,
				Position:    li,
			}
			if err := tx.Create(&lesson).Error; err != nil {
				return fmt.Errorf("create lesson %q: %w", entry.Title, err)
			}
		}
	}

	return nil
}
