package models

import "time"

const (
	RoleParent = "parent"
	RoleChild  = "child"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex"`
	Password    string    `json:"-"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	ParentID    *uint     `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) IsParent() bool {
	return u.Role == RoleParent
}

// Profile is the payload returned by /api/users/me. It mirrors the user
// record minus the credential, plus the derived isParent flag older clients
// still read.
type Profile struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	IsParent    bool      `json:"isParent"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		IsParent:    u.IsParent(),
	}
}
