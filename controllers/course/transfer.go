package controllers

import (
	"courseadmin/database"
	"courseadmin/middleware"
	"courseadmin/ordering"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// exportRecords flattens the hierarchy into the transfer format: one record
// per lesson, module-then-lesson position order, url always null.
func exportRecords(db *gorm.DB) ([]ordering.ImportRecord, error) {
	modules, err := fetchHierarchy(db)
	if err != nil {
		return nil, err
	}

	records := make([]ordering.ImportRecord, 0)
	for _, module := range modules {
		for _, lesson := range module.Lessons {
			records = append(records, ordering.ImportRecord{
				Module:      module.Name,
				Title:       lesson.Title,
				VideoIframe: lesson.VideoIframe,
				URL:         nil,
			})
		}
	}
	return records, nil
}

// AdminExportCourse returns the flattened hierarchy as a plain JSON array,
// ready to be saved to a file and re-imported later.
func AdminExportCourse(c *fiber.Ctx) error {
	records, err := exportRecords(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export course!", nil)
	}
	return c.JSON(records)
}

// AdminImportCourse replaces the entire hierarchy with the uploaded records.
// The batch was validated before this handler ran; the replace itself runs
// in one transaction, so a partway failure rolls back instead of leaving the
// store empty.
func AdminImportCourse(c *fiber.Ctx) error {
	records, ok := c.Locals("validatedImport").([]ordering.ImportRecord)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	err := db.Transaction(func(tx *gorm.DB) error {
		return ReplaceAllData(tx, records)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Import failed, nothing was changed!", nil)
	}

	// Full refetch so the caller resynchronizes generated identities.
	modules, err := fetchHierarchy(db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Import succeeded but refetch failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course imported successfully!", fiber.Map{
		"modules": modules,
	})
}
