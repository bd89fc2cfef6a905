package controllers

import (
	"net/http"
	"strconv"

	"FaithNest/middlewares"
	"FaithNest/models"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var alertService *services.AlertService

func SetAlertService(service *services.AlertService) {
	alertService = service
}

// Alert reads tolerate anonymous callers and answer with empty payloads;
// clients poll these before the user has logged in.

func GetAlerts(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Alert{})
		return
	}

	alerts, err := alertService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func GetRecentAlerts(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Alert{})
		return
	}

	alerts, err := alertService.Recent(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func GetUnreadCount(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}

	count, err := alertService.UnreadCount(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func UpdateAlert(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var input struct {
		Read    *bool `json:"read"`
		Handled *bool `json:"handled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := alertService.Mark(userID, uint(id), services.AlertPatch{
		Read:    input.Read,
		Handled: input.Handled,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
