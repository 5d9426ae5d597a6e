package lessonControllers

import (
	"planbook/database"
	"planbook/middleware"
	"planbook/models"

	"github.com/gofiber/fiber/v2"
)

// SaveObjective creates or updates an objective on a plan owned by the
// caller. The update path matches the objective by both id and plan id so an
// objective cannot be moved onto another plan.
func SaveObjective(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	reqData, ok := c.Locals("validatedObjective").(*struct {
		ID    *uint  `json:"id"`
		Text  string `json:"text"`
		Order *int   `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update path
	if reqData.ID != nil {
		var objective models.LessonObjective
		if err := database.Database.Db.Where("id = ? AND plan_id = ?", *reqData.ID, plan.ID).First(&objective).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Objective not found!", nil)
		}

		objective.Text = reqData.Text
		if reqData.Order != nil {
			objective.Order = *reqData.Order
		}

		if err := database.Database.Db.Save(&objective).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update objective!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Objective updated successfully!", objective)
	}

	// Create path
	order := 1
	if reqData.Order != nil {
		order = *reqData.Order
	}

	objective := models.LessonObjective{
		PlanID: plan.ID,
		Text:   reqData.Text,
		Order:  order,
	}

	if err := database.Database.Db.Create(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create objective!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Objective created successfully!", objective)
}

// DeleteObjective deletes an objective matched by both id and plan id
func DeleteObjective(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)
	objectiveID := c.Locals("objectiveID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	var objective models.LessonObjective
	if err := database.Database.Db.Where("id = ? AND plan_id = ?", objectiveID, plan.ID).First(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Objective not found!", nil)
	}

	result := database.Database.Db.Where("id = ? AND plan_id = ?", objectiveID, plan.ID).Delete(&models.LessonObjective{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete objective!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Objective not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Objective deleted successfully!", objective)
}
