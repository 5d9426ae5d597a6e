package models

import "gorm.io/gorm"

// LessonMaterial is a teaching material scoped to one lesson plan
type LessonMaterial struct {
	gorm.Model
	PlanID uint   `json:"plan_id" gorm:"index"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	URL    string `json:"url"`
	Order  int    `json:"order" gorm:"column:order_index;default:1"`
}
