package courseRoutes

import (
	controllers "courseadmin/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// SetupPublicCourseRoutes sets up the unauthenticated read surface
func SetupPublicCourseRoutes(app *fiber.App) {
	app.Get("/feed", controllers.PublicFeed)
}
