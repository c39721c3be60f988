package controllers

import (
	"courseadmin/database"
	"courseadmin/middleware"
	courseModels "courseadmin/models/course"
	"courseadmin/ordering"
	"encoding/json"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CaptureTree copies the current hierarchy into the snapshot shape. Entity
// ids are stripped; only names, titles, media and positions survive.
func CaptureTree(db *gorm.DB) (courseModels.SnapshotTree, error) {
	modules, err := fetchHierarchy(db)
	if err != nil {
		return courseModels.SnapshotTree{}, err
	}

	tree := courseModels.SnapshotTree{Modules: make([]courseModels.SnapshotModule, 0, len(modules))}
	for _, module := range modules {
		snapModule := courseModels.SnapshotModule{
			Name:     module.Name,
			Position: module.Position,
			Lessons:  make([]courseModels.SnapshotLesson, 0, len(module.Lessons)),
		}
		for _, lesson := range module.Lessons {
			snapModule.Lessons = append(snapModule.Lessons, courseModels.SnapshotLesson{
				Title:       lesson.Title,
				VideoIframe: lesson.VideoIframe,
				Position:    lesson.Position,
			})
		}
		tree.Modules = append(tree.Modules, snapModule)
	}
	return tree, nil
}

// TreeGroups turns a captured tree back into module groups, walking modules
// and lessons in stored position order. Restore feeds the result through the
// same ReplaceAllGroups path as import, so both assign identical positions.
// A module with no lessons still yields a group, so restore recreates it
// instead of dropping it.
func TreeGroups(tree courseModels.SnapshotTree) []ordering.ModuleGroup {
	modules := make([]courseModels.SnapshotModule, len(tree.Modules))
	copy(modules, tree.Modules)
	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Position < modules[j].Position })

	groups := make([]ordering.ModuleGroup, 0, len(modules))
	for _, module := range modules {
		lessons := make([]courseModels.SnapshotLesson, len(module.Lessons))
		copy(lessons, module.Lessons)
		sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Position < lessons[j].Position })

		group := ordering.ModuleGroup{Name: module.Name}
		for _, lesson := range lessons {
			group.Lessons = append(group.Lessons, ordering.LessonEntry{
				Title:       lesson.Title,
				VideoIframe: lesson.VideoIframe,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// AdminCreateSnapshot captures the current hierarchy under the given name,
// or a generated one when the client doesn't care.
func AdminCreateSnapshot(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSnapshot").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	name := reqData.Name
	if name == "" {
		name = "snapshot-" + uuid.NewString()[:8]
	}

	db := database.Database.Db

	tree, err := CaptureTree(db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to capture snapshot!", nil)
	}

	payload, err := json.Marshal(tree)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to capture snapshot!", nil)
	}

	snapshot := courseModels.Snapshot{
		Name: name,
		Data: datatypes.JSON(payload),
	}

	if err := db.Create(&snapshot).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save snapshot!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Snapshot created successfully!", snapshot)
}

// AdminListSnapshots lists snapshots, newest first.
func AdminListSnapshots(c *fiber.Ctx) error {
	var snapshots []courseModels.Snapshot
	if err := database.Database.Db.Order("created_at desc, id desc").Find(&snapshots).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch snapshots!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Snapshots fetched successfully!", fiber.Map{
		"snapshots": snapshots,
	})
}

// AdminRestoreSnapshot replaces the hierarchy with a snapshot's contents.
func AdminRestoreSnapshot(c *fiber.Ctx) error {
	snapshotID := c.Locals("snapshotID").(int)

	db := database.Database.Db

	var snapshot courseModels.Snapshot
	if err := db.Where("id = ?", snapshotID).First(&snapshot).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Snapshot not found!", nil)
	}

	var tree courseModels.SnapshotTree
	if err := json.Unmarshal(snapshot.Data, &tree); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Snapshot payload is corrupt!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllGroups(tx, TreeGroups(tree))
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Restore failed, nothing was changed!", nil)
	}

	modules, err := fetchHierarchy(db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Restore succeeded but refetch failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Snapshot restored successfully!", fiber.Map{
		"modules": modules,
	})
}

// AdminDeleteSnapshot deletes a snapshot.
func AdminDeleteSnapshot(c *fiber.Ctx) error {
	snapshotID := c.Locals("snapshotID").(int)

	db := database.Database.Db

	var snapshot courseModels.Snapshot
	if err := db.Where("id = ?", snapshotID).First(&snapshot).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Snapshot not found!", nil)
	}

	if err := db.Unscoped().Delete(&snapshot).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete snapshot!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Snapshot deleted successfully!", nil)
}
