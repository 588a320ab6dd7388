package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"skillbite/database"
	"skillbite/middleware"
	"skillbite/models"
	"skillbite/utils"
	courseValidator "skillbite/validators/course"
)

// GetUserCourses handles GET /courses: it lists a user's courses with
// completion counts for the dashboard.
func GetUserCourses(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing user_id!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		var resources []models.Resource
		if err := json.Unmarshal(course.Resources, &resources); err != nil {
			resources = nil
		}
		completedCount := 0
		for _, r := range resources {
			if r.Completed {
				completedCount++
			}
		}
		result = append(result, fiber.Map{
			"course_id":       course.CourseID,
			"course_name":     course.CourseName,
			"goal":            course.Goal,
			"completed":       course.Completed,
			"created_at":      course.CreatedAt,
			"total_resources": len(resources),
			"completed_count": completedCount,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// GetCourseDetails handles GET /courses/:courseId.
func GetCourseDetails(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing user_id!", nil)
	}
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var resources []models.Resource
	if err := json.Unmarshal(course.Resources, &resources); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Stored course is unreadable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course_id":   course.CourseID,
		"course_name": course.CourseName,
		"goal":        course.Goal,
		"skills":      course.Skills,
		"completed":   course.Completed,
		"created_at":  course.CreatedAt,
		"resources":   resources,
	})
}

// UpdateCourseProgress handles POST /courses/progress/update. Completing the
// last open resource marks the whole course completed, which frees one of
// the user's active-course slots.
func UpdateCourseProgress(c *fiber.Ctx) error {
	req := c.Locals("validatedCourseProgress").(*courseValidator.CourseProgressRequest)

	if err := SetCourseResourceCompleted(req.UserID, req.CourseID, *req.ResourceIndex, *req.Completed); err != nil {
		return middleware.AppErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress updated successfully.", nil)
}

// SetCourseResourceCompleted applies the same single-flag mutation as the
// legacy progress update, scoped to one course, and recomputes the derived
// completed flag afterwards.
func SetCourseResourceCompleted(userID, courseID string, index int, completed bool) error {
	db := database.Database.Db

	var course models.Course
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&course).Error; err != nil {
		return utils.NewAppError(utils.ErrNotFound, "Course not found")
	}

	var resources []models.Resource
	if err := json.Unmarshal(course.Resources, &resources); err != nil {
		return utils.NewAppError(utils.ErrTransport, "stored course is unreadable").WithRaw(err.Error())
	}

	if index < 0 || index >= len(resources) {
		return utils.NewAppError(utils.ErrInvalidIndex, "resource_index is out of range")
	}

	resources[index].Completed = completed

	payload, err := json.Marshal(resources)
	if err != nil {
		return utils.NewAppError(utils.ErrTransport, "failed to encode resources").WithRaw(err.Error())
	}
	updates := map[string]interface{}{
		"resources": datatypes.JSON(payload),
		"completed": models.AllCompleted(resources),
	}
	if err := db.Model(&models.Course{}).Where("id = ?", course.ID).Updates(updates).Error; err != nil {
		return utils.NewAppError(utils.ErrTransport, "failed to write course progress").WithRaw(err.Error())
	}
	return nil
}
