package models

// Dashboard is the aggregate view served to a logged-in child.
type Dashboard struct {
	User              DashboardUser       `json:"user"`
	DailyDevotional   Devotional          `json:"dailyDevotional"`
	GameTime          GameTime            `json:"gameTime"`
	ScriptureProgress []ScriptureProgress `json:"scriptureProgress"`
	RecentLessons     []Lesson            `json:"recentLessons"`
}

type DashboardUser struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"displayName"`
}

// GameTime counters are minutes, computed from the child's game records.
type GameTime struct {
	Earned    int `json:"earned"`
	Available int `json:"available"`
	Total     int `json:"total"`
}
