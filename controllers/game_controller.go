package controllers

import (
	"net/http"
	"strconv"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var gameService *services.GameService

func SetGameService(service *services.GameService) {
	gameService = service
}

func GetGameMonitoring(c *gin.Context) {
	callerID, _ := middlewares.CurrentUserID(c)
	records, err := gameService.List(callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func UpdateGameApproval(c *gin.Context) {
	callerID, _ := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var input struct {
		Approved *bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := gameService.SetApproval(callerID, uint(id), input.Approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func ReportGamePlay(c *gin.Context) {
	childID, _ := middlewares.CurrentUserID(c)

	var input struct {
		GameName      string `json:"gameName"`
		Minutes       int    `json:"minutes"`
		ContentRating string `json:"contentRating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := gameService.Report(childID, input.GameName, input.Minutes, input.ContentRating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}
