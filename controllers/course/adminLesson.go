package controllers

import (
	"courseadmin/database"
	"courseadmin/middleware"
	courseModels "courseadmin/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateLesson appends a new lesson at the end of its module.
func AdminCreateLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		VideoIframe string `json:"video_iframe"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// New lessons go to the end of the module: position = sibling count.
	var count int64
	if err := db.Model(&courseModels.Lesson{}).Where("module_id = ?", module.ID).Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	lesson := courseModels.Lesson{
		ModuleID:    module.ID,
		Title:       reqData.Title,
		VideoIframe: reqData.VideoIframe,
		Position:    int(count),
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson edits a lesson's title and/or embed markup. The embed
// markup may be set to empty, so both fields are optional pointers.
func AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title       *string `json:"title"`
		VideoIframe *string `json:"video_iframe"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.VideoIframe != nil {
		lesson.VideoIframe = *reqData.VideoIframe
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson removes a lesson and closes the position gap among its
// former siblings.
func AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Unscoped().Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	if err := resequenceLessons(db, lesson.ModuleID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Lesson deleted but renumbering failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
