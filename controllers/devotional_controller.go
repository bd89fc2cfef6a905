package controllers

import (
	"net/http"

	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var devotionalService *services.DevotionalService

func SetDevotionalService(service *services.DevotionalService) {
	devotionalService = service
}

func GetDevotionals(c *gin.Context) {
	c.JSON(http.StatusOK, devotionalService.List())
}

func GetTodayDevotional(c *gin.Context) {
	c.JSON(http.StatusOK, devotionalService.Today())
}
