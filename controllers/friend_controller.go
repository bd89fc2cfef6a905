package controllers

import (
	"net/http"
	"strconv"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var friendService *services.FriendService

func SetFriendService(service *services.FriendService) {
	friendService = service
}

func GetFriendRequests(c *gin.Context) {
	callerID, _ := middlewares.CurrentUserID(c)
	requests, err := friendService.List(callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ReportFriendRequest is posted from a child device when someone asks to be
// friends; the household parent gets an alert.
func ReportFriendRequest(c *gin.Context) {
	childID, _ := middlewares.CurrentUserID(c)

	var input struct {
		FriendName string `json:"friendName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := friendService.Report(childID, input.FriendName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func UpdateFriendRequest(c *gin.Context) {
	callerID, _ := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := friendService.UpdateStatus(callerID, uint(id), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func DeleteFriendRequest(c *gin.Context) {
	callerID, _ := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	if err := friendService.Delete(callerID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
