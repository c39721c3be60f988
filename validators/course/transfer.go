package courseValidator

import (
	"courseadmin/middleware"
	"courseadmin/ordering"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// ImportCourse parses the uploaded JSON array and validates the whole batch
// before any handler can touch the store. A single bad record rejects
// everything; the error names the first offending index.
func ImportCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []ordering.ImportRecord
		if err := json.Unmarshal(c.Body(), &records); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid import JSON!", nil)
		}

		if err := ordering.ValidateRecords(records); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"records": err.Error(),
			})
		}

		c.Locals("validatedImport", records)
		return c.Next()
	}
}
