package models

import "time"

// GameRecord is one monitored game per child. Approved is tri-state:
// nil means the parent has not ruled on it yet.
type GameRecord struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	ChildID       uint       `json:"childId" gorm:"index:idx_child_game,unique"`
	GameName      string     `json:"gameName" gorm:"index:idx_child_game,unique"`
	ContentRating string     `json:"contentRating,omitempty"`
	Approved      *bool      `json:"approved"`
	ScreenTime    int        `json:"screenTime"`
	LastPlayed    *time.Time `json:"lastPlayed,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
