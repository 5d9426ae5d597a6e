package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonJob records the state of an external content-generation task. The
// worker that runs the task lives outside this service; rows here are only
// updated on explicit caller request.
type LessonJob struct {
	gorm.Model
	UserID  string         `json:"user_id" gorm:"index"`
	PlanID  *uint          `json:"plan_id" gorm:"index"`
	JobType string         `json:"job_type" gorm:"default:'full'"` // outline, objectives, steps, materials, full
	Input   datatypes.JSON `json:"input"`
	Output  datatypes.JSON `json:"output"`
	Status  string         `json:"status" gorm:"default:'pending'"` // pending, completed, failed
}
