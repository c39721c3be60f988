package courseRoutes

import (
	controllers "courseadmin/controllers/course"
	"courseadmin/middleware"
	validators "courseadmin/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.AdminGuard)

	// Module management
	adminGroup.Post("/module", validators.ModulePayload(), controllers.AdminCreateModule)
	adminGroup.Put("/module/:id", validators.ModuleID(), validators.ModulePayload(), controllers.AdminUpdateModule)
	adminGroup.Delete("/module/:id", validators.ModuleID(), controllers.AdminDeleteModule)
	adminGroup.Get("/modules", controllers.AdminListModules)

	// Lesson management
	adminGroup.Post("/module/:id/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/lesson/:id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/lesson/:id", validators.LessonID(), controllers.AdminDeleteLesson)

	// Drag-and-drop reordering
	adminGroup.Post("/reorder", validators.Reorder(), controllers.AdminReorder)

	// Export / import
	adminGroup.Get("/export", controllers.AdminExportCourse)
	adminGroup.Post("/import", validators.ImportCourse(), controllers.AdminImportCourse)

	// Snapshots
	adminGroup.Post("/snapshot", validators.CreateSnapshot(), controllers.AdminCreateSnapshot)
	adminGroup.Get("/snapshots", controllers.AdminListSnapshots)
	adminGroup.Post("/snapshot/:id/restore", validators.SnapshotID(), controllers.AdminRestoreSnapshot)
	adminGroup.Delete("/snapshot/:id", validators.SnapshotID(), controllers.AdminDeleteSnapshot)
}
