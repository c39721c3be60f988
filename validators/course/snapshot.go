package courseValidator

import (
	"courseadmin/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateSnapshot validates the optional snapshot name.
func CreateSnapshot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})

		// An empty body is fine: the controller generates a name.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		if len(reqData.Name) > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Name must not exceed 100 characters!",
			})
		}

		c.Locals("validatedSnapshot", reqData)
		return c.Next()
	}
}

// SnapshotID validates the snapshot id URL parameter.
func SnapshotID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshotIDStr := strings.TrimSpace(c.Params("id"))
		if snapshotIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Snapshot ID is required!", nil)
		}

		snapshotID, err := strconv.Atoi(snapshotIDStr)
		if err != nil || snapshotID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Snapshot ID!", nil)
		}

		c.Locals("snapshotID", snapshotID)
		return c.Next()
	}
}
