package models

import "time"

type Lesson struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	Title               string `json:"title"`
	Content             string `json:"content"`
	AgeRange            string `json:"ageRange"`
	ScriptureReferences string `json:"scriptureReferences"`
}

type LessonProgress struct {
	ID          uint       `json:"-" gorm:"primaryKey"`
	UserID      uint       `json:"-" gorm:"index:idx_user_lesson,unique"`
	LessonID    uint       `json:"lessonId" gorm:"index:idx_user_lesson,unique"`
	Completed   bool       `json:"completed"`
	Score       *int       `json:"score,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type ScriptureProgress struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	UserID             uint   `json:"-" gorm:"index:idx_user_scripture,unique"`
	ScriptureReference string `json:"scriptureReference" gorm:"index:idx_user_scripture,unique"`
	Content            string `json:"content"`
	Memorized          bool   `json:"memorized"`
	Progress           int    `json:"progress"`
}
