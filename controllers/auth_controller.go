package controllers

import (
	"net/http"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var authService *services.AuthService

func SetAuthService(service *services.AuthService) {
	authService = service
}

func Signup(c *gin.Context) {
	var input struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
		Role        string `json:"role"`
		ParentID    *uint  `json:"parentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := authService.Signup(services.SignupInput{
		Username:    input.Username,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		ParentID:    input.ParentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful", "user": user})
}

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := authService.Login(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, int(authService.Sessions.TTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token, "user": user})
}

// Logout tears down the session. Calling it without one is still a 200; the
// operation is idempotent.
func Logout(c *gin.Context) {
	token := middlewares.CurrentToken(c)
	if token != "" {
		if err := authService.Logout(token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
