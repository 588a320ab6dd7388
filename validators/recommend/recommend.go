package recommendValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillbite/middleware"
)

var validate = validator.New()

// RecommendRequest is the validated /recommend body.
type RecommendRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Skills     string `json:"skills" validate:"required"`
	Goal       string `json:"goal" validate:"required"`
	CourseName string `json:"courseName"`
}

func Recommend() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecommendRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Whitespace-only values count as missing
		reqData.UserID = strings.TrimSpace(reqData.UserID)
		reqData.Skills = strings.TrimSpace(reqData.Skills)
		reqData.Goal = strings.TrimSpace(reqData.Goal)
		reqData.CourseName = strings.TrimSpace(reqData.CourseName)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "This field is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecommend", reqData)
		return c.Next()
	}
}
