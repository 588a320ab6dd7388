package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"skillbite/database"
	"skillbite/middleware"
	"skillbite/models"
	"skillbite/utils"
	progressValidator "skillbite/validators/progress"
)

// GetProgress handles GET /progress: it returns the user's most recently
// generated plan with per-resource completion flags.
func GetProgress(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing user_id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var plan models.LearningPlan
	if len(user.Recommendations) > 0 {
		if err := json.Unmarshal(user.Recommendations, &plan); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Stored plan is unreadable!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": plan,
	})
}

// UpdateProgress handles POST /progress/update.
func UpdateProgress(c *fiber.Ctx) error {
	req := c.Locals("validatedProgress").(*progressValidator.UpdateProgressRequest)

	if err := SetResourceCompleted(req.UserID, *req.ResourceIndex, *req.Completed); err != nil {
		return middleware.AppErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", nil)
}

// SetResourceCompleted flips the completed flag on one resource of the
// user's current plan. The read-modify-write touches only that flag; order
// and every other field survive unchanged, and repeating the same call
// writes the same state, so the operation is safe to retry.
func SetResourceCompleted(userID string, index int, completed bool) error {
	db := database.Database.Db

	var user models.User
	if err := db.Where("user_id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return utils.NewAppError(utils.ErrNotFound, "User not found")
	}

	var plan models.LearningPlan
	if len(user.Recommendations) > 0 {
		if err := json.Unmarshal(user.Recommendations, &plan); err != nil {
			return utils.NewAppError(utils.ErrTransport, "stored plan is unreadable").WithRaw(err.Error())
		}
	}

	if index < 0 || index >= len(plan.Resources) {
		return utils.NewAppError(utils.ErrInvalidIndex, "resource_index is out of range")
	}

	plan.Resources[index].Completed = completed

	payload, err := json.Marshal(&plan)
	if err != nil {
		return utils.NewAppError(utils.ErrTransport, "failed to encode plan").WithRaw(err.Error())
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("recommendations", datatypes.JSON(payload)).Error; err != nil {
		return utils.NewAppError(utils.ErrTransport, "failed to write progress").WithRaw(err.Error())
	}
	return nil
}
