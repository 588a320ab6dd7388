package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skillbite/database"
	"skillbite/models"
)

// stubChecker reports the links in dead as gone and everything else as alive.
type stubChecker struct {
	dead map[string]bool
}

func (s *stubChecker) Alive(ctx context.Context, link string) bool {
	return !s.dead[link]
}

func setupAuditDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func auditCourse(t *testing.T, db *gorm.DB, courseID string, completed bool, resources []models.Resource) models.Course {
	t.Helper()
	payload, err := json.Marshal(resources)
	require.NoError(t, err)
	course := models.Course{
		RecordID:   "rec-" + courseID,
		UserID:     "user-1",
		CourseID:   courseID,
		CourseName: courseID,
		Goal:       "Data Analyst",
		Skills:     "Python",
		Resources:  datatypes.JSON(payload),
		Completed:  completed,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCourseAuditRepairsCompletedFlag(t *testing.T) {
	db := setupAuditDB(t)

	// Flag drifted in both directions.
	stale := auditCourse(t, db, "all-done", false, []models.Resource{
		{Title: "a", Link: "https://example.com/a", Type: models.ResourceTypeArticle, Completed: true},
		{Title: "b", Link: "https://example.com/b", Type: models.ResourceTypeArticle, Completed: true},
	})
	eager := auditCourse(t, db, "half-done", true, []models.Resource{
		{Title: "a", Link: "https://example.com/a", Type: models.ResourceTypeArticle, Completed: true},
		{Title: "b", Link: "https://example.com/b", Type: models.ResourceTypeArticle},
	})

	runCourseAudit(&stubChecker{})

	var got models.Course
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.True(t, got.Completed)

	var got2 models.Course
	require.NoError(t, db.First(&got2, eager.ID).Error)
	assert.False(t, got2.Completed)
}

func TestCourseAuditNeverMutatesResources(t *testing.T) {
	db := setupAuditDB(t)

	course := auditCourse(t, db, "dead-links", false, []models.Resource{
		{Title: "gone", Link: "https://example.com/gone", Type: models.ResourceTypeArticle},
		{Title: "video", Link: "https://www.youtube.com/watch?v=x", Type: models.ResourceTypeYouTube},
	})

	runCourseAudit(&stubChecker{dead: map[string]bool{"https://example.com/gone": true}})

	// Dead links are reported, not removed: indices persisted in progress
	// updates must stay stable.
	var got models.Course
	require.NoError(t, db.First(&got, course.ID).Error)
	assert.JSONEq(t, string(course.Resources), string(got.Resources))
}
