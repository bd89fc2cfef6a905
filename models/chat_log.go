package models

import "time"

type ChatLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ChildID   uint      `json:"childId" gorm:"index"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	Flagged   bool      `json:"flagged"`
	Timestamp time.Time `json:"timestamp"`
}
