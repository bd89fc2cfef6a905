package models

type PrayerEntry struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	UserID  uint   `json:"-" gorm:"index"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}
