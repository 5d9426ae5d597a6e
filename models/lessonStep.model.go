package models

import "gorm.io/gorm"

// LessonStep is an instructional step scoped to one lesson plan
type LessonStep struct {
	gorm.Model
	PlanID          uint   `json:"plan_id" gorm:"index"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	Order           int    `json:"order" gorm:"column:order_index;default:1"`
}
