package jobControllers

import (
	"encoding/json"
	"planbook/database"
	"planbook/middleware"
	"planbook/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateJob records a new generation job for the caller. When a plan id is
// supplied the plan must belong to the caller; a job may also exist without
// a plan. The job payloads are stored uninterpreted.
func CreateJob(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedJob").(*struct {
		PlanID  *uint           `json:"plan_id"`
		JobType *string         `json:"job_type"`
		Input   json.RawMessage `json:"input"`
		Output  json.RawMessage `json:"output"`
		Status  *string         `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Verify plan ownership when the job is tied to a plan
	if reqData.PlanID != nil {
		var plan models.LessonPlan
		if err := database.Database.Db.Where("id = ? AND owner_id = ?", *reqData.PlanID, userId).First(&plan).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
		}
	}

	job := models.LessonJob{
		UserID:  userId,
		PlanID:  reqData.PlanID,
		JobType: "full",
		Status:  "pending",
	}

	if reqData.JobType != nil {
		job.JobType = *reqData.JobType
	}
	if reqData.Status != nil {
		job.Status = *reqData.Status
	}
	if len(reqData.Input) > 0 {
		job.Input = datatypes.JSON(reqData.Input)
	}
	if len(reqData.Output) > 0 {
		job.Output = datatypes.JSON(reqData.Output)
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job created successfully!", job)
}

// UpdateJob applies output and status to a job owned by the caller. Jobs are
// matched by user id directly, not through plan ownership, so plan-less jobs
// stay updatable. A request carrying no fields returns the stored record
// unchanged.
func UpdateJob(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(int)

	var job models.LessonJob
	if err := database.Database.Db.Where("id = ? AND user_id = ?", jobID, userId).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	reqData, ok := c.Locals("validatedJobUpdate").(*struct {
		Output json.RawMessage `json:"output"`
		Status *string         `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	changed := false

	if len(reqData.Output) > 0 {
		job.Output = datatypes.JSON(reqData.Output)
		changed = true
	}
	if reqData.Status != nil && *reqData.Status != job.Status {
		job.Status = *reqData.Status
		changed = true
	}

	if !changed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Job unchanged.", job)
	}

	if err := database.Database.Db.Save(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job updated successfully!", job)
}

// ListJobs returns the caller's jobs, optionally narrowed to a plan and/or a
// status. Plan-less jobs show up when no plan filter is given and drop out
// once one is applied.
func ListJobs(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedJobList").(*struct {
		PlanID *uint   `query:"plan_id"`
		Status *string `query:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	db := database.Database.Db.Model(&models.LessonJob{}).Where("user_id = ?", userId)

	if reqData.PlanID != nil {
		// The filtered plan must belong to the caller
		var plan models.LessonPlan
		if err := database.Database.Db.Where("id = ? AND owner_id = ?", *reqData.PlanID, userId).First(&plan).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson plan not found!", nil)
		}
		db = db.Where("plan_id = ?", *reqData.PlanID)
	}
	if reqData.Status != nil {
		db = db.Where("status = ?", *reqData.Status)
	}

	jobs := []models.LessonJob{}
	if err := db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", fiber.Map{
		"jobs": jobs,
	})
}
