package models

import "time"

// Alert types raised by the monitoring services.
const (
	AlertFriendRequest = "friend_request"
	AlertGameActivity  = "game_activity"
)

type Alert struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	ChildID   *uint     `json:"childId,omitempty"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	Handled   bool      `json:"handled"`
	CreatedAt time.Time `json:"createdAt"`
}
