package lessonControllers

import (
	"bytes"
	"encoding/json"
	"planbook/database"
	"planbook/middleware"
	"planbook/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreatePlan creates a new lesson plan owned by the caller
func CreatePlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Get validated request data
	reqData, ok := c.Locals("validatedPlan").(*struct {
		Title           string   `json:"title"`
		Subject         *string  `json:"subject"`
		GradeLevel      *string  `json:"grade_level"`
		Overview        *string  `json:"overview"`
		DurationMinutes *int     `json:"duration_minutes"`
		Tags            []string `json:"tags"`
		Status          *string  `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan := models.LessonPlan{
		OwnerID: userId,
		Title:   reqData.Title,
		Status:  "draft",
	}

	if reqData.Subject != nil {
		plan.Subject = *reqData.Subject
	}
	if reqData.GradeLevel != nil {
		plan.GradeLevel = *reqData.GradeLevel
	}
	if reqData.Overview != nil {
		plan.Overview = *reqData.Overview
	}
	if reqData.DurationMinutes != nil {
		plan.DurationMinutes = *reqData.DurationMinutes
	}
	if len(reqData.Tags) > 0 {
		tags, err := json.Marshal(reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode tags!", nil)
		}
		plan.Tags = datatypes.JSON(tags)
	}
	if reqData.Status != nil {
		plan.Status = *reqData.Status
	}

	// Save to database
	if err := database.Database.Db.Create(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson plan created successfully!", plan)
}

// UpdatePlan applies a partial field set to a plan owned by the caller. A
// request carrying no changes returns the stored record without bumping
// UpdatedAt.
func UpdatePlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	reqData, ok := c.Locals("validatedPlanUpdate").(*struct {
		Title           *string   `json:"title"`
		Subject         *string   `json:"subject"`
		GradeLevel      *string   `json:"grade_level"`
		Overview        *string   `json:"overview"`
		DurationMinutes *int      `json:"duration_minutes"`
		Tags            *[]string `json:"tags"`
		Status          *string   `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	changed := false

	if reqData.Title != nil && *reqData.Title != plan.Title {
		plan.Title = *reqData.Title
		changed = true
	}
	if reqData.Subject != nil && *reqData.Subject != plan.Subject {
		plan.Subject = *reqData.Subject
		changed = true
	}
	if reqData.GradeLevel != nil && *reqData.GradeLevel != plan.GradeLevel {
		plan.GradeLevel = *reqData.GradeLevel
		changed = true
	}
	if reqData.Overview != nil && *reqData.Overview != plan.Overview {
		plan.Overview = *reqData.Overview
		changed = true
	}
	if reqData.DurationMinutes != nil && *reqData.DurationMinutes != plan.DurationMinutes {
		plan.DurationMinutes = *reqData.DurationMinutes
		changed = true
	}
	if reqData.Tags != nil {
		tags, err := json.Marshal(*reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode tags!", nil)
		}
		if !bytes.Equal(plan.Tags, tags) {
			plan.Tags = datatypes.JSON(tags)
			changed = true
		}
	}
	if reqData.Status != nil && *reqData.Status != plan.Status {
		plan.Status = *reqData.Status
		changed = true
	}

	// Nothing to apply, leave UpdatedAt untouched
	if !changed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson plan unchanged.", plan)
	}

	if err := database.Database.Db.Save(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson plan updated successfully!", plan)
}

// ArchivePlan soft deletes a plan by setting its status to archived
func ArchivePlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	plan.Status = "archived"

	if err := database.Database.Db.Save(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive lesson plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson plan archived successfully!", plan)
}

// ListMyPlans returns all plans owned by the caller, optionally filtered by status
func ListMyPlans(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Status *string `query:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	db := database.Database.Db.Model(&models.LessonPlan{}).Where("owner_id = ?", userId)
	if reqData.Status != nil {
		db = db.Where("status = ?", *reqData.Status)
	}

	plans := []models.LessonPlan{}
	if err := db.Order("created_at DESC").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson plans fetched successfully!", fiber.Map{
		"plans": plans,
	})
}

// GetPlanWithDetails returns a plan together with its objectives, steps and
// materials. Rows come back in storage order; sorting by the order field is
// left to the client.
func GetPlanWithDetails(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.LessonPlan
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", planID, userId).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
	}

	// Initialized so empty sections serialize as arrays
	objectives := []models.LessonObjective{}
	if err := database.Database.Db.Where("plan_id = ?", plan.ID).Find(&objectives).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch objectives!", nil)
	}

	steps := []models.LessonStep{}
	if err := database.Database.Db.Where("plan_id = ?", plan.ID).Find(&steps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch steps!", nil)
	}

	materials := []models.LessonMaterial{}
	if err := database.Database.Db.Where("plan_id = ?", plan.ID).Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson plan fetched successfully!", fiber.Map{
		"plan":       plan,
		"objectives": objectives,
		"steps":      steps,
		"materials":  materials,
	})
}
