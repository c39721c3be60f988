package controllers

import (
	courseModels "courseadmin/models/course"
	"courseadmin/ordering"

	"gorm.io/gorm"
)

// fetchHierarchy loads the full tree, modules and lessons both sorted by
// position. Every read path (admin list, export, feed, snapshot capture)
// goes through here so they all see the same ordering.
func fetchHierarchy(db *gorm.DB) ([]courseModels.Module, error) {
	var modules []courseModels.Module
	err := db.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc, id asc")
	}).Order("position asc, id asc").Find(&modules).Error
	return modules, err
}

// resequenceModules rewrites module positions back to 0..n-1 in the current
// order, touching only rows whose position actually changed.
func resequenceModules(db *gorm.DB) error {
	var modules []courseModels.Module
	if err := db.Order("position asc, id asc").Find(&modules).Error; err != nil {
		return err
	}

	order := make([]uint, len(modules))
	current := make(map[uint]int, len(modules))
	for i, m := range modules {
		order[i] = m.ID
		current[m.ID] = m.Position
	}

	for id, pos := range ordering.Diff(order, current) {
		if err := db.Model(&courseModels.Module{}).Where("id = ?", id).Update("position", pos).Error; err != nil {
			return err
		}
	}
	return nil
}

// resequenceLessons does the same for one module's lessons.
func resequenceLessons(db *gorm.DB, moduleID uint) error {
	var lessons []courseModels.Lesson
	if err := db.Where("module_id = ?", moduleID).Order("position asc, id asc").Find(&lessons).Error; err != nil {
		return err
	}

	order := make([]uint, len(lessons))
	current := make(map[uint]int, len(lessons))
	for i, l := range lessons {
		order[i] = l.ID
		current[l.ID] = l.Position
	}

	for id, pos := range ordering.Diff(order, current) {
		if err := db.Model(&courseModels.Lesson{}).Where("id = ?", id).Update("position", pos).Error; err != nil {
			return err
		}
	}
	return nil
}
