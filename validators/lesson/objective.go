package lessonValidator

import (
	"planbook/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SaveObjective() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		reqData := new(struct {
			ID    *uint  `json:"id"`
			Text  string `json:"text"`
			Order *int   `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Text
		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Objective text is required!"
		}

		// Validate Order
		if reqData.Order != nil && *reqData.Order < 1 {
			errors["order"] = "Order must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedObjective", reqData)
		return c.Next()
	}
}

func DeleteObjective() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid objective id!", nil)
		}
		c.Locals("objectiveID", id)

		return c.Next()
	}
}
