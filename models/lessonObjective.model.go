package models

import "gorm.io/gorm"

// LessonObjective is a learning objective scoped to one lesson plan
type LessonObjective struct {
	gorm.Model
	PlanID uint   `json:"plan_id" gorm:"index"`
	Text   string `json:"text"`
	Order  int    `json:"order" gorm:"column:order_index;default:1"`
}
