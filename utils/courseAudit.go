package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"

	"skillbite/database"
	"skillbite/models"
)

// logAudit logs audit events with timestamp
func logAudit(message string) {
	log.Printf("[COURSE-AUDIT %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCourseAuditScheduler runs the nightly course audit. The audit
// re-probes article links on courses created since the previous midnight
// (report only, persisted resource indices must stay stable) and repairs the
// derived completed flag where it has drifted from the resource list.
func StartCourseAuditScheduler(checker LinkChecker) *cron.Cron {
	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		runCourseAudit(checker)
	})
	c.Start()
	logAudit("Scheduler started")
	return c
}

func runCourseAudit(checker LinkChecker) {
	db := database.Database.Db
	since := now.BeginningOfDay().AddDate(0, 0, -1)

	var courses []models.Course
	if err := db.Where("created_at >= ? AND is_deleted = false", since).Find(&courses).Error; err != nil {
		logAudit("Error fetching courses: " + err.Error())
		return
	}

	deadLinks := 0
	repaired := 0
	for _, course := range courses {
		var resources []models.Resource
		if err := json.Unmarshal(course.Resources, &resources); err != nil {
			logAudit(fmt.Sprintf("Course %s has unreadable resources: %v", course.CourseID, err))
			continue
		}

		for _, r := range resources {
			if r.Type == models.ResourceTypeArticle && r.Link != "" && !checker.Alive(context.Background(), r.Link) {
				logAudit(fmt.Sprintf("Dead article link in course %s for user %s: %s", course.CourseID, course.UserID, r.Link))
				deadLinks++
			}
		}

		allDone := models.AllCompleted(resources)
		if course.Completed != allDone {
			if err := db.Model(&models.Course{}).Where("id = ?", course.ID).Update("completed", allDone).Error; err != nil {
				logAudit("Error repairing completed flag: " + err.Error())
				continue
			}
			repaired++
		}
	}

	logAudit(fmt.Sprintf("Audit finished: %d courses checked, %d dead links, %d completed flags repaired", len(courses), deadLinks, repaired))
}
