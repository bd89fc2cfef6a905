package main

import (
	"log"
	"os"

	"FaithNest/config"
	"FaithNest/controllers"
	"FaithNest/repositories"
	"FaithNest/repositories/impl"
	"FaithNest/repositories/memory"
	"FaithNest/routes"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitDatabase()

	// Repositories: postgres when configured, in-process store otherwise.
	// Sessions are ephemeral and always live in memory.
	store := memory.NewStore()

	var (
		userRepo     repositories.UserRepository
		prayerRepo   repositories.PrayerRepository
		friendRepo   repositories.FriendRequestRepository
		gameRepo     repositories.GameRepository
		alertRepo    repositories.AlertRepository
		progressRepo repositories.ProgressRepository
		chatRepo     repositories.ChatRepository
	)
	if config.DB != nil {
		userRepo = impl.NewUserRepository(config.DB)
		prayerRepo = impl.NewPrayerRepository(config.DB)
		friendRepo = impl.NewFriendRequestRepository(config.DB)
		gameRepo = impl.NewGameRepository(config.DB)
		alertRepo = impl.NewAlertRepository(config.DB)
		progressRepo = impl.NewProgressRepository(config.DB)
		chatRepo = impl.NewChatRepository(config.DB)
	} else {
		userRepo = memory.NewUserRepository(store)
		prayerRepo = memory.NewPrayerRepository(store)
		friendRepo = memory.NewFriendRequestRepository(store)
		gameRepo = memory.NewGameRepository(store)
		alertRepo = memory.NewAlertRepository(store)
		progressRepo = memory.NewProgressRepository(store)
		chatRepo = memory.NewChatRepository(store)
	}
	sessionRepo := memory.NewSessionRepository(store)

	// Services
	sessionService := services.NewSessionService(sessionRepo, config.SessionTTL())
	authService := services.NewAuthService(userRepo, sessionService)
	userService := services.NewUserService(userRepo, prayerRepo, friendRepo, gameRepo,
		alertRepo, progressRepo, chatRepo, sessionService)
	prayerService := services.NewPrayerService(prayerRepo)
	alertService := services.NewAlertService(alertRepo)
	friendService := services.NewFriendService(friendRepo, userRepo, alertService)
	gameService := services.NewGameService(gameRepo, userRepo, alertService)
	lessonService := services.NewLessonService(progressRepo)
	devotionalService := services.NewDevotionalService()
	bibleService := services.NewBibleService(config.BibleAPIURL())
	chatService := services.NewChatService(chatRepo, userRepo)
	dashboardService := services.NewDashboardService(userRepo, gameRepo, progressRepo,
		devotionalService, lessonService)

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetUserService(userService)
	controllers.SetPrayerService(prayerService)
	controllers.SetAlertService(alertService)
	controllers.SetFriendService(friendService)
	controllers.SetGameService(gameService)
	controllers.SetLessonService(lessonService)
	controllers.SetDevotionalService(devotionalService)
	controllers.SetBibleService(bibleService)
	controllers.SetChatService(chatService)
	controllers.SetDashboardService(dashboardService)

	r := gin.Default()
	routes.RegisterRoutes(r, sessionService, userRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
