package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonPlan is the top-level lesson plan entity, owned by a single user.
// Plans are archived via Status instead of being hard-deleted.
type LessonPlan struct {
	gorm.Model
	OwnerID         string         `json:"owner_id" gorm:"index"`
	Title           string         `json:"title"`
	Subject         string         `json:"subject"`
	GradeLevel      string         `json:"grade_level"`
	Overview        string         `json:"overview"`
	DurationMinutes int            `json:"duration_minutes" gorm:"default:0"`
	Tags            datatypes.JSON `json:"tags"`
	Status          string         `json:"status" gorm:"default:'draft'"` // draft, published, archived
}
