package courseValidator

import (
	"courseadmin/middleware"
	"courseadmin/ordering"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Reorder validates a drag-end payload. Both ids carry a scope prefix
// ("module-12", "lesson-7"); they are parsed and cross-checked here so the
// controller only ever sees a classified, same-scope move.
func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DragID   string `json:"dragId"`
			TargetID string `json:"targetId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.DragID = strings.TrimSpace(reqData.DragID)
		reqData.TargetID = strings.TrimSpace(reqData.TargetID)

		scope, movedID, err := ordering.ParseDragID(reqData.DragID)
		if err != nil {
			errors["dragId"] = err.Error()
		}

		targetScope, targetID, err := ordering.ParseDragID(reqData.TargetID)
		if err != nil {
			errors["targetId"] = err.Error()
		} else if len(errors) == 0 && targetScope != scope {
			errors["targetId"] = "Drag and target must be in the same scope!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", &struct {
			Scope    ordering.Scope
			MovedID  uint
			TargetID uint
		}{
			Scope:    scope,
			MovedID:  movedID,
			TargetID: targetID,
		})
		return c.Next()
	}
}
