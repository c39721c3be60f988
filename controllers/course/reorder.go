package controllers

import (
	"courseadmin/database"
	"courseadmin/middleware"
	courseModels "courseadmin/models/course"
	"courseadmin/ordering"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminReorder handles a drag-end event. The validator has already
// classified the drag by its id prefix, so a lesson drag can never rewrite
// module positions and vice versa. Position updates are issued one row at a
// time with no transaction: last write wins, per the editing model.
func AdminReorder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*struct {
		Scope    ordering.Scope
		MovedID  uint
		TargetID uint
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	switch reqData.Scope {
	case ordering.ScopeModule:
		return reorderModules(c, db, reqData.MovedID, reqData.TargetID)
	case ordering.ScopeLesson:
		return reorderLessons(c, db, reqData.MovedID, reqData.TargetID)
	}
	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown reorder scope!", nil)
}

func reorderModules(c *fiber.Ctx, db *gorm.DB, movedID, targetID uint) error {
	var modules []courseModels.Module
	if err := db.Order("position asc, id asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	order := make([]uint, len(modules))
	current := make(map[uint]int, len(modules))
	for i, m := range modules {
		order[i] = m.ID
		current[m.ID] = m.Position
	}

	next := ordering.Reorder(order, movedID, targetID)
	changed := ordering.Diff(next, current)
	if len(changed) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Nothing to reorder.", fiber.Map{"order": order})
	}

	for id, pos := range changed {
		if err := db.Model(&courseModels.Module{}).Where("id = ?", id).Update("position", pos).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to persist module order!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules reordered successfully!", fiber.Map{"order": next})
}

func reorderLessons(c *fiber.Ctx, db *gorm.DB, movedID, targetID uint) error {
	// An absent moved id makes the whole operation a no-op, same as the
	// module scope.
	var moved courseModels.Lesson
	if err := db.Where("id = ?", movedID).First(&moved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Nothing to reorder.", fiber.Map{"order": []uint{}})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	// Siblings only: a target in another module simply won't be found in
	// this order, which makes the move a no-op.
	var lessons []courseModels.Lesson
	if err := db.Where("module_id = ?", moved.ModuleID).Order("position asc, id asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	order := make([]uint, len(lessons))
	current := make(map[uint]int, len(lessons))
	for i, l := range lessons {
		order[i] = l.ID
		current[l.ID] = l.Position
	}

	next := ordering.Reorder(order, movedID, targetID)
	changed := ordering.Diff(next, current)
	if len(changed) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Nothing to reorder.", fiber.Map{"order": order})
	}

	for id, pos := range changed {
		if err := db.Model(&courseModels.Lesson{}).Where("id = ?", id).Update("position", pos).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to persist lesson order!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", fiber.Map{"order": next})
}
