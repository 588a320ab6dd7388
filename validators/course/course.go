package courseValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillbite/middleware"
)

var validate = validator.New()

// CourseProgressRequest is the validated /courses/progress/update body.
type CourseProgressRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	CourseID      string `json:"course_id" validate:"required"`
	ResourceIndex *int   `json:"resource_index" validate:"required"`
	Completed     *bool  `json:"completed"`
}

func UpdateCourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.UserID = strings.TrimSpace(reqData.UserID)
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)

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

		c.Locals("validatedCourseProgress", reqData)
		return c.Next()
	}
}
