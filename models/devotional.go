package models

type Devotional struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title"`
	Verse   string `json:"verse"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD
}
