package lessonControllers

import (
	"planbook/database"
	"planbook/middleware"
	"planbook/models"

	"github.com/gofiber/fiber/v2"
)

// SaveStep creates or updates a step on a plan owned by the caller
func SaveStep(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	reqData, ok := c.Locals("validatedStep").(*struct {
		ID              *uint   `json:"id"`
		Title           *string `json:"title"`
		Description     string  `json:"description"`
		DurationMinutes *int    `json:"duration_minutes"`
		Order           *int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update path
	if reqData.ID != nil {
		var step models.LessonStep
		if err := database.Database.Db.Where("id = ? AND plan_id = ?", *reqData.ID, plan.ID).First(&step).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Step not found!", nil)
		}

		step.Description = reqData.Description
		if reqData.Title != nil {
			step.Title = *reqData.Title
		}
		if reqData.DurationMinutes != nil {
			step.DurationMinutes = *reqData.DurationMinutes
		}
		if reqData.Order != nil {
			step.Order = *reqData.Order
		}

		if err := database.Database.Db.Save(&step).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update step!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Step updated successfully!", step)
	}

	// Create path
	step := models.LessonStep{
		PlanID:      plan.ID,
		Description: reqData.Description,
		Order:       1,
	}

	if reqData.Title != nil {
		step.Title = *reqData.Title
	}
	if reqData.DurationMinutes != nil {
		step.DurationMinutes = *reqData.DurationMinutes
	}
	if reqData.Order != nil {
		step.Order = *reqData.Order
	}

	if err := database.Database.Db.Create(&step).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create step!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Step created successfully!", step)
}

// DeleteStep deletes a step matched by both id and plan id
func DeleteStep(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)
	stepID := c.Locals("stepID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	var step models.LessonStep
	if err := database.Database.Db.Where("id = ? AND plan_id = ?", stepID, plan.ID).First(&step).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Step not found!", nil)
	}

	result := database.Database.Db.Where("id = ? AND plan_id = ?", stepID, plan.ID).Delete(&models.LessonStep{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete step!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Step not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step deleted successfully!", step)
}
