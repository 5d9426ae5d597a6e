package lessonControllers

import (
	"planbook/database"
	"planbook/middleware"
	"planbook/models"

	"github.com/gofiber/fiber/v2"
)

// SaveMaterial creates or updates a material on a plan owned by the caller
func SaveMaterial(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	reqData, ok := c.Locals("validatedMaterial").(*struct {
		ID    *uint   `json:"id"`
		Name  string  `json:"name"`
		Type  *string `json:"type"`
		URL   *string `json:"url"`
		Order *int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update path
	if reqData.ID != nil {
		var material models.LessonMaterial
		if err := database.Database.Db.Where("id = ? AND plan_id = ?", *reqData.ID, plan.ID).First(&material).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
		}

		material.Name = reqData.Name
		if reqData.Type != nil {
			material.Type = *reqData.Type
		}
		if reqData.URL != nil {
			material.URL = *reqData.URL
		}
		if reqData.Order != nil {
			material.Order = *reqData.Order
		}

		if err := database.Database.Db.Save(&material).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
	}

	// Create path
	material := models.LessonMaterial{
		PlanID: plan.ID,
		Name:   reqData.Name,
		Order:  1,
	}

	if reqData.Type != nil {
		material.Type = *reqData.Type
	}
	if reqData.URL != nil {
		material.URL = *reqData.URL
	}
	if reqData.Order != nil {
		material.Order = *reqData.Order
	}

	if err := database.Database.Db.Create(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created successfully!", material)
}

// DeleteMaterial deletes a material matched by both id and plan id
func DeleteMaterial(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)
	materialID := c.Locals("materialID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	var material models.LessonMaterial
	if err := database.Database.Db.Where("id = ? AND plan_id = ?", materialID, plan.ID).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	result := database.Database.Db.Where("id = ? AND plan_id = ?", materialID, plan.ID).Delete(&models.LessonMaterial{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", material)
}
