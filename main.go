package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"skillbite/config"
	recommendControllers "skillbite/controllers/recommend"
	"skillbite/database"
	"skillbite/middleware"
	courseRoutes "skillbite/routers/courseRoutes"
	progressRoutes "skillbite/routers/progressRoutes"
	recommendRoutes "skillbite/routers/recommendRoutes"
	"skillbite/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// External collaborators fail here, at startup, if their keys are missing.
	gemini, err := utils.NewGeminiClient()
	if err != nil {
		log.Fatalf("Gemini client init failed: %v", err)
	}
	youtube, err := utils.NewYouTubeClient()
	if err != nil {
		log.Fatalf("YouTube client init failed: %v", err)
	}
	links := utils.NewLinkChecker()

	recommendControllers.Gemini = gemini
	recommendControllers.YouTube = youtube
	recommendControllers.Links = links

	utils.StartCourseAuditScheduler(links)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "SkillBite is running", nil)
	})

	recommendRoutes.SetupRecommendRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
