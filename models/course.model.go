package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is a persisted learning plan bound to one user. CourseID is derived
// from the course name, so regenerating under the same name overwrites the
// course body. RecordID is server-generated at first insert and never changes
// afterwards, which keeps rows distinguishable even if two names normalize to
// the same derived id.
type Course struct {
	gorm.Model
	RecordID   string         `json:"record_id" gorm:"size:36"`
	UserID     string         `json:"user_id" gorm:"uniqueIndex:idx_user_course"`
	CourseID   string         `json:"course_id" gorm:"uniqueIndex:idx_user_course"`
	CourseName string         `json:"course_name"`
	Goal       string         `json:"goal"`
	Skills     string         `json:"skills"`
	Resources  datatypes.JSON `json:"resources"`
	// Completed is derived: true iff every resource is completed.
	Completed bool `json:"completed" gorm:"default:false"`
	IsDeleted bool `gorm:"default:false"`
}
