package main

import (
	"courseadmin/config"
	"courseadmin/database"
	authRoutes "courseadmin/routers/authRoutes"
	courseRoutes "courseadmin/routers/courseRoutes"
	feedbackRoutes "courseadmin/routers/feedbackRoutes"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	// The read feed is consumed cross-origin by third parties, so any origin
	// is allowed.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the admin UI bundle from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	courseRoutes.SetupPublicCourseRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)

	utils.StartSnapshotScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
