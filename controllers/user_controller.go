package controllers

import (
	"net/http"
	"strconv"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var userService *services.UserService

func SetUserService(service *services.UserService) {
	userService = service
}

// Me returns the caller's profile. Anonymous callers get a 401 with a null
// body; existing clients match on that exact shape.
func Me(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, nil)
		return
	}

	user, err := authService.Me(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Profile())
}

func GetChildren(c *gin.Context) {
	parentID, _ := middlewares.CurrentUserID(c)
	children, err := userService.Children(parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, children)
}

func AddChild(c *gin.Context) {
	parentID, _ := middlewares.CurrentUserID(c)

	var input struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := userService.CreateChild(parentID, input.Username, input.Password, input.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}

func DeleteChild(c *gin.Context) {
	parentID, _ := middlewares.CurrentUserID(c)

	childID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	if err := userService.DeleteChild(parentID, uint(childID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child removed"})
}
