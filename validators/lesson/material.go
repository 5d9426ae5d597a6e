package lessonValidator

import (
	"net/url"
	"planbook/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SaveMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		reqData := new(struct {
			ID    *uint   `json:"id"`
			Name  string  `json:"name"`
			Type  *string `json:"type"`
			URL   *string `json:"url"`
			Order *int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Material name is required!"
		}

		// Validate URL when supplied
		if reqData.URL != nil {
			parsed, err := url.Parse(*reqData.URL)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				errors["url"] = "URL must be a valid absolute URL!"
			}
		}

		// Validate Order
		if reqData.Order != nil && *reqData.Order < 1 {
			errors["order"] = "Order must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

func DeleteMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planId, err := c.ParamsInt("planId")
		if err != nil || planId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}
		c.Locals("planID", planId)

		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
		}
		c.Locals("materialID", id)

		return c.Next()
	}
}
