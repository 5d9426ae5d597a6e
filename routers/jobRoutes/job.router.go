package jobRoutes

import (
	controllers "planbook/controllers/job"
	"planbook/middleware"
	validators "planbook/validators/job"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes sets up all generation job routes
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job")

	jobGroup.Post("/", middleware.JWTMiddleware, validators.CreateJob(), controllers.CreateJob)
	jobGroup.Get("/list", middleware.JWTMiddleware, validators.JobList(), controllers.ListJobs)
	jobGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateJob(), controllers.UpdateJob)
}
