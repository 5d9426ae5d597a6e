package lessonRoutes

import (
	controllers "planbook/controllers/lesson"
	"planbook/middleware"
	validators "planbook/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up all lesson plan routes
func SetupLessonRoutes(app *fiber.App) {
	planGroup := app.Group("/lesson/plan")

	// Plans
	planGroup.Post("/", middleware.JWTMiddleware, validators.CreatePlan(), controllers.CreatePlan)
	planGroup.Get("/list", middleware.JWTMiddleware, validators.PlanList(), controllers.ListMyPlans)
	planGroup.Get("/:planId", middleware.JWTMiddleware, validators.PlanDetail(), controllers.GetPlanWithDetails)
	planGroup.Put("/:planId", middleware.JWTMiddleware, validators.UpdatePlan(), controllers.UpdatePlan)
	planGroup.Delete("/:planId", middleware.JWTMiddleware, validators.ArchivePlan(), controllers.ArchivePlan)

	// Objectives
	planGroup.Post("/:planId/objective", middleware.JWTMiddleware, validators.SaveObjective(), controllers.SaveObjective)
	planGroup.Delete("/:planId/objective/:id", middleware.JWTMiddleware, validators.DeleteObjective(), controllers.DeleteObjective)

	// Steps
	planGroup.Post("/:planId/step", middleware.JWTMiddleware, validators.SaveStep(), controllers.SaveStep)
	planGroup.Delete("/:planId/step/:id", middleware.JWTMiddleware, validators.DeleteStep(), controllers.DeleteStep)

	// Materials
	planGroup.Post("/:planId/material", middleware.JWTMiddleware, validators.SaveMaterial(), controllers.SaveMaterial)
	planGroup.Delete("/:planId/material/:id", middleware.JWTMiddleware, validators.DeleteMaterial(), controllers.DeleteMaterial)
}
