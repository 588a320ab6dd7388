package progressValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillbite/middleware"
)

var validate = validator.New()

// UpdateProgressRequest is the validated /progress/update body. Completed
// defaults to true when omitted.
type UpdateProgressRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	ResourceIndex *int   `json:"resource_index" validate:"required"`
	Completed     *bool  `json:"completed"`
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.UserID = strings.TrimSpace(reqData.UserID)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "This field is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Completed == nil {
			completed := true
			reqData.Completed = &completed
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
