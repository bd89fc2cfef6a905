package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"FaithNest/controllers"
	"FaithNest/models"
	"FaithNest/repositories/memory"
	"FaithNest/routes"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// setupTestRouter wires the full stack against a fresh in-memory store, the
// same shape main.go builds, so these tests exercise routes, guards and
// services together.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	sessionService := services.NewSessionService(memory.NewSessionRepository(store), 0)

	alertService := services.NewAlertService(memory.NewAlertRepository(store))
	controllers.SetAuthService(services.NewAuthService(userRepo, sessionService))
	controllers.SetUserService(services.NewUserService(
		userRepo,
		memory.NewPrayerRepository(store),
		memory.NewFriendRequestRepository(store),
		memory.NewGameRepository(store),
		memory.NewAlertRepository(store),
		memory.NewProgressRepository(store),
		memory.NewChatRepository(store),
		sessionService,
	))
	controllers.SetPrayerService(services.NewPrayerService(memory.NewPrayerRepository(store)))
	controllers.SetAlertService(alertService)
	controllers.SetFriendService(services.NewFriendService(memory.NewFriendRequestRepository(store), userRepo, alertService))
	controllers.SetGameService(services.NewGameService(memory.NewGameRepository(store), userRepo, alertService))
	controllers.SetLessonService(services.NewLessonService(memory.NewProgressRepository(store)))
	controllers.SetDevotionalService(services.NewDevotionalService())
	controllers.SetBibleService(services.NewBibleService("http://bible.invalid"))
	controllers.SetChatService(services.NewChatService(memory.NewChatRepository(store), userRepo))
	controllers.SetDashboardService(services.NewDashboardService(
		userRepo,
		memory.NewGameRepository(store),
		memory.NewProgressRepository(store),
		services.NewDevotionalService(),
		services.NewLessonService(memory.NewProgressRepository(store)),
	))

	router := gin.New()
	routes.RegisterRoutes(router, sessionService, userRepo)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupAndLogin(t *testing.T, router *gin.Engine, username, role string) (models.User, string) {
	w := doJSON(router, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username":    username,
		"password":    "secret",
		"displayName": username,
		"role":        role,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var signupResp struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &signupResp))

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Token)

	return signupResp.User, loginResp.Token
}
