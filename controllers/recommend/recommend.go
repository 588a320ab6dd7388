package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"skillbite/config"
	"skillbite/database"
	"skillbite/middleware"
	"skillbite/models"
	"skillbite/utils"
	recommendValidator "skillbite/validators/recommend"
)

// Generation parameters for the two model calls.
const (
	planTemperature  = 0.7
	planMaxTokens    = 2048
	topicTemperature = 0.7
	topicMaxTokens   = 500

	videosPerTopic = 1
)

// External collaborators, wired in main and swapped for stubs in tests.
var (
	Gemini  utils.GeminiService
	YouTube utils.YouTubeService
	Links   utils.LinkChecker
)

// RecommendResources handles POST /recommend: it runs the full generation
// pipeline and returns the enriched plan.
func RecommendResources(c *fiber.Ctx) error {
	req := c.Locals("validatedRecommend").(*recommendValidator.RecommendRequest)

	plan, course, err := GenerateLearningPlan(c.UserContext(), req.UserID, req.Skills, req.Goal, req.CourseName)
	if err != nil {
		return middleware.AppErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning plan generated successfully!", fiber.Map{
		"course_id": course.CourseID,
		"plan":      plan,
	})
}

// GenerateLearningPlan runs the recommendation pipeline for one user:
// quota check, plan prompt, model call, extraction, link validation, topic
// generation, video enrichment, persistence. Nothing is written before the
// full resource list exists, so a failed request leaves no partial course.
func GenerateLearningPlan(ctx context.Context, userID, skills, goal, courseName string) (*models.LearningPlan, *models.Course, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(skills) == "" || strings.TrimSpace(goal) == "" {
		return nil, nil, utils.NewAppError(utils.ErrInvalidInput, "userId, skills and goal are required")
	}

	// Quota first: a refused request must not spend model or search quota.
	if err := CheckCourseQuota(userID); err != nil {
		return nil, nil, err
	}

	raw, err := Gemini.GenerateText(ctx, utils.BuildPlanPrompt(skills, goal), planTemperature, planMaxTokens)
	if err != nil {
		return nil, nil, err
	}

	payload, ok := utils.ExtractJSONObject(raw)
	if !ok {
		return nil, nil, utils.NewAppError(utils.ErrExtractionFailure, "no payload found in model response").WithRaw(raw)
	}

	// The model's own verdict on gibberish input is a validation message for
	// the user, not a system error.
	var rejection models.ModelRejection
	if err := json.Unmarshal([]byte(payload), &rejection); err == nil && rejection.Error != "" {
		return nil, nil, utils.NewAppError(utils.ErrModelRejectedInput, rejection.Message)
	}

	var plan models.LearningPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, nil, utils.NewAppError(utils.ErrExtractionFailure, "model payload is not a valid plan").WithRaw(payload)
	}

	plan.Resources = sanitizeArticles(plan.Resources)
	plan.Resources = utils.FilterDeadArticles(ctx, Links, plan.Resources)

	topics := generateTopics(ctx, skills, goal)
	for _, video := range utils.BuildVideoResources(ctx, YouTube, topics, videosPerTopic) {
		plan.Resources = append(plan.Resources, video.Resource)
	}

	course, err := persistPlan(userID, skills, goal, courseName, &plan)
	if err != nil {
		return nil, nil, err
	}
	return &plan, course, nil
}

// CheckCourseQuota refuses generation once a user has the maximum number of
// active courses. A course counts as active while any resource is incomplete;
// a course with no resources at all is active too.
func CheckCourseQuota(userID string) error {
	var courses []models.Course
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).Find(&courses).Error; err != nil {
		return utils.NewAppError(utils.ErrTransport, "failed to read existing courses").WithRaw(err.Error())
	}

	active := []string{}
	for _, course := range courses {
		if courseActive(course) {
			active = append(active, course.CourseID)
		}
	}

	if len(active) >= config.AppConfig.MaxActiveCourses {
		appErr := utils.NewAppError(utils.ErrQuotaExceeded,
			fmt.Sprintf("You already have %d active courses (%s). Complete one before generating another.", len(active), strings.Join(active, ", ")))
		appErr.Data = map[string]interface{}{"active_courses": active}
		return appErr
	}
	return nil
}

func courseActive(course models.Course) bool {
	var resources []models.Resource
	if err := json.Unmarshal(course.Resources, &resources); err != nil {
		// Unreadable resource lists block the slot rather than freeing it.
		return true
	}
	if len(resources) == 0 {
		return true
	}
	return !models.AllCompleted(resources)
}

// sanitizeArticles keeps only well-formed article entries from the model
// output. Articles must carry a non-empty link; entries without one are
// dropped rather than persisted half-broken.
func sanitizeArticles(resources []models.Resource) []models.Resource {
	kept := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Link) == "" {
			continue
		}
		if r.Type == "" {
			r.Type = models.ResourceTypeArticle
		}
		kept = append(kept, r)
	}
	return kept
}

// generateTopics asks the model for five searchable topics and falls back to
// a deterministic goal-derived list when anything goes wrong. Topic failure
// must never block enrichment.
func generateTopics(ctx context.Context, skills, goal string) []string {
	raw, err := Gemini.GenerateText(ctx, utils.BuildTopicPrompt(skills, goal), topicTemperature, topicMaxTokens)
	if err != nil {
		log.Printf("Topic generation failed, using fallback topics: %v", err)
		return FallbackTopics(goal)
	}

	span, ok := utils.ExtractJSONArray(raw)
	if !ok {
		return FallbackTopics(goal)
	}
	var topics []string
	if err := json.Unmarshal([]byte(span), &topics); err != nil || len(topics) == 0 {
		return FallbackTopics(goal)
	}
	return topics
}

// FallbackTopics is the deterministic topic list used when the model cannot
// produce one.
func FallbackTopics(goal string) []string {
	return []string{
		goal + " tutorial",
		goal + " beginner guide",
		goal + " crash course",
		"Learn " + goal,
		goal + " fundamentals",
	}
}

// DeriveCourseID turns a human-readable course name into its stable id. The
// same name always produces the same id, so regenerating a course replaces
// it instead of stacking duplicates.
func DeriveCourseID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, "/", "-")
	return id
}

// persistPlan writes the course row (upsert on user_id + course_id) and the
// user document (skills, goal, latest plan, last_generated_course pointer).
func persistPlan(userID, skills, goal, courseName string, plan *models.LearningPlan) (*models.Course, error) {
	db := database.Database.Db

	name := strings.TrimSpace(courseName)
	if name == "" {
		name = strings.TrimSpace(goal)
	}
	if name == "" {
		name = "untitled-course"
	}
	courseID := DeriveCourseID(name)

	resourcesJSON, err := json.Marshal(plan.Resources)
	if err != nil {
		return nil, utils.NewAppError(utils.ErrTransport, "failed to encode resources").WithRaw(err.Error())
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, utils.NewAppError(utils.ErrTransport, "failed to encode plan").WithRaw(err.Error())
	}

	course := models.Course{
		RecordID:   uuid.NewString(),
		UserID:     userID,
		CourseID:   courseID,
		CourseName: name,
		Goal:       goal,
		Skills:     skills,
		Resources:  datatypes.JSON(resourcesJSON),
		Completed:  models.AllCompleted(plan.Resources),
	}
	// Re-generating under the same derived name overwrites the course body
	// but keeps record_id and created_at from the first insert.
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"course_name", "goal", "skills", "resources", "completed", "updated_at"}),
	}).Create(&course).Error; err != nil {
		return nil, utils.NewAppError(utils.ErrTransport, "failed to persist course").WithRaw(err.Error())
	}

	user := models.User{
		UserID:              userID,
		Skills:              skills,
		Goal:                goal,
		Recommendations:     datatypes.JSON(planJSON),
		LastGeneratedCourse: courseID,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"skills", "goal", "recommendations", "last_generated_course", "updated_at"}),
	}).Create(&user).Error; err != nil {
		return nil, utils.NewAppError(utils.ErrTransport, "failed to persist user").WithRaw(err.Error())
	}

	return &course, nil
}
