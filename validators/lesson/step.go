package lessonValidator

import (
	"planbook/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SaveStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		reqData := new(struct {
			ID              *uint   `json:"id"`
			Title           *string `json:"title"`
			Description     string  `json:"description"`
			DurationMinutes *int    `json:"duration_minutes"`
			Order           *int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Step description is required!"
		}

		// Validate DurationMinutes
		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 1 {
			errors["duration_minutes"] = "Duration must be a positive number of minutes!"
		}

		// Validate Order
		if reqData.Order != nil && *reqData.Order < 1 {
			errors["order"] = "Order must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStep", reqData)
		return c.Next()
	}
}

func DeleteStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid step id!", nil)
		}
		c.Locals("stepID", id)

		return c.Next()
	}
}
