package progressRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "skillbite/controllers/progress"
	validators "skillbite/validators/progress"
)

// SetupProgressRoutes sets up the legacy per-user progress routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/", controllers.GetProgress)
	progressGroup.Post("/update", validators.UpdateProgress(), controllers.UpdateProgress)
}
