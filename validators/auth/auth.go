package authValidator

import (
	"courseadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

// Login validates the admin login body.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Password == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"password": "Password is required!",
			})
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
