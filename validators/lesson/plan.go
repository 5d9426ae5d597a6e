package lessonValidator

import (
	"planbook/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidPlanStatus(status string) bool {
	switch status {
	case "draft", "published", "archived":
		return true
	}
	return false
}

func CreatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string   `json:"title"`
			Subject         *string  `json:"subject"`
			GradeLevel      *string  `json:"grade_level"`
			Overview        *string  `json:"overview"`
			DurationMinutes *int     `json:"duration_minutes"`
			Tags            []string `json:"tags"`
			Status          *string  `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate DurationMinutes
		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 1 {
			errors["duration_minutes"] = "Duration must be a positive number of minutes!"
		}

		// Validate Status
		if reqData.Status != nil && !isValidPlanStatus(*reqData.Status) {
			errors["status"] = "Status must be one of draft, published or archived!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlan", reqData)
		return c.Next()
	}
}

func UpdatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		reqData := new(struct {
			Title           *string   `json:"title"`
			Subject         *string   `json:"subject"`
			GradeLevel      *string   `json:"grade_level"`
			Overview        *string   `json:"overview"`
			DurationMinutes *int      `json:"duration_minutes"`
			Tags            *[]string `json:"tags"`
			Status          *string   `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Title may be omitted but not cleared
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}

		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 1 {
			errors["duration_minutes"] = "Duration must be a positive number of minutes!"
		}

		if reqData.Status != nil && !isValidPlanStatus(*reqData.Status) {
			errors["status"] = "Status must be one of draft, published or archived!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlanUpdate", reqData)
		return c.Next()
	}
}

func ArchivePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)
		return c.Next()
	}
}

func PlanList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil && !isValidPlanStatus(*reqData.Status) {
			errors["status"] = "Status must be one of draft, published or archived!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func PlanDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)
		return c.Next()
	}
}
