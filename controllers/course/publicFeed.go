package controllers

import (
	"courseadmin/database"
	"log"

	"github.com/gofiber/fiber/v2"
)

// PublicFeed serves the flattened lesson feed consumed by third parties:
// a plain JSON array ordered by module position then lesson position. Unlike
// the admin surface it does not use the response envelope; consumers expect
// the bare array, or {error, message} with a 500 on failure.
func PublicFeed(c *fiber.Ctx) error {
	records, err := exportRecords(database.Database.Db)
	if err != nil {
		log.Printf("feed: failed to load hierarchy: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_error",
			"message": "failed to load course feed",
		})
	}
	return c.JSON(records)
}
