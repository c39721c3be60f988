package feedbackRoutes

import (
	controllers "courseadmin/controllers/feedback"
	"courseadmin/middleware"
	validators "courseadmin/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SetupFeedbackRoutes sets up the public feedback form and the admin dashboard
func SetupFeedbackRoutes(app *fiber.App) {
	app.Post("/feedback", validators.SubmitFeedback(), controllers.SubmitFeedback)

	adminGroup := app.Group("/admin/feedback", middleware.AdminGuard)
	adminGroup.Get("/", validators.FeedbackList(), controllers.AdminListFeedback)
	adminGroup.Get("/stats", controllers.AdminFeedbackStats)
}
