package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "skillbite/controllers/course"
	validators "skillbite/validators/course"
)

// SetupCourseRoutes sets up the course listing and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.GetUserCourses)
	courseGroup.Post("/progress/update", validators.UpdateCourseProgress(), controllers.UpdateCourseProgress)
	courseGroup.Get("/:courseId", controllers.GetCourseDetails)
}
