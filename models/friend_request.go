package models

import "time"

const (
	FriendRequestPending  = "pending"
	FriendRequestApproved = "approved"
	FriendRequestDenied   = "denied"
)

type FriendRequest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChildID     uint      `json:"childId" gorm:"index"`
	FriendName  string    `json:"friendName"`
	Status      string    `json:"status"`
	RequestDate time.Time `json:"requestDate"`
}
