package recommendRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "skillbite/controllers/recommend"
	validators "skillbite/validators/recommend"
)

// SetupRecommendRoutes sets up the plan generation route
func SetupRecommendRoutes(app *fiber.App) {
	app.Post("/recommend", validators.Recommend(), controllers.RecommendResources)
}
