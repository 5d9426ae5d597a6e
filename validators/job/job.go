package jobValidator

import (
	"encoding/json"
	"planbook/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidJobType(jobType string) bool {
	switch jobType {
	case "outline", "objectives", "steps", "materials", "full":
		return true
	}
	return false
}

func isValidJobStatus(status string) bool {
	switch status {
	case "pending", "completed", "failed":
		return true
	}
	return false
}

func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlanID  *uint           `json:"plan_id"`
			JobType *string         `json:"job_type"`
			Input   json.RawMessage `json:"input"`
			Output  json.RawMessage `json:"output"`
			Status  *string         `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PlanID != nil && *reqData.PlanID < 1 {
			errors["plan_id"] = "Plan id must be a positive number!"
		}

		if reqData.JobType != nil && !isValidJobType(*reqData.JobType) {
			errors["job_type"] = "Job type must be one of outline, objectives, steps, materials or full!"
		}

		if reqData.Status != nil && !isValidJobStatus(*reqData.Status) {
			errors["status"] = "Status must be one of pending, completed or failed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

func UpdateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobId, err := c.ParamsInt("id")
		if err != nil || jobId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid job id!", nil)
		}
		c.Locals("jobID", jobId)

		reqData := new(struct {
			Output json.RawMessage `json:"output"`
			Status *string         `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil && !isValidJobStatus(*reqData.Status) {
			errors["status"] = "Status must be one of pending, completed or failed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobUpdate", reqData)
		return c.Next()
	}
}

func JobList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlanID *uint   `query:"plan_id"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.PlanID != nil && *reqData.PlanID < 1 {
			errors["plan_id"] = "Plan id must be a positive number!"
		}

		if reqData.Status != nil && !isValidJobStatus(*reqData.Status) {
			errors["status"] = "Status must be one of pending, completed or failed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobList", reqData)
		return c.Next()
	}
}
