package authRoutes

import (
	authControllers "courseadmin/controllers/auth"
	authValidators "courseadmin/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.AdminLogin)
}
