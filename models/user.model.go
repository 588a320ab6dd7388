package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is one application user document. Users are created implicitly by the
// first recommendation request (upsert), there is no signup flow.
type User struct {
	gorm.Model
	UserID string `json:"user_id" gorm:"uniqueIndex"`
	Skills string `json:"skills"`
	Goal   string `json:"goal"`
	// Recommendations keeps the most recently generated plan. The /progress
	// endpoints read and mutate this field.
	Recommendations     datatypes.JSON `json:"recommendations"`
	LastGeneratedCourse string         `json:"last_generated_course"`
	IsDeleted           bool           `gorm:"default:false"`
}
