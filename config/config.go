package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"FaithNest/models"
	"FaithNest/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDatabase connects to postgres when DB_HOST is set. Without it the
// server runs on the in-process store, which is what the test and demo
// setups use.
func InitDatabase() {
	host := os.Getenv("DB_HOST")
	if host == "" {
		log.Println("DB_HOST not set, using in-memory store")
		return
	}

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Successfully connected to database!")

	err = DB.AutoMigrate(
		&models.User{},
		&models.PrayerEntry{},
		&models.FriendRequest{},
		&models.GameRecord{},
		&models.Alert{},
		&models.LessonProgress{},
		&models.ScriptureProgress{},
		&models.ChatLog{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
}

func SessionTTL() time.Duration {
	raw := os.Getenv("SESSION_TTL_HOURS")
	if raw == "" {
		return services.DefaultSessionTTL
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		log.Printf("Invalid SESSION_TTL_HOURS %q, using default", raw)
		return services.DefaultSessionTTL
	}
	return time.Duration(hours) * time.Hour
}

func BibleAPIURL() string {
	if url := os.Getenv("BIBLE_API_URL"); url != "" {
		return url
	}
	return "https://bible-api.com"
}
