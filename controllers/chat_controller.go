package controllers

import (
	"net/http"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var chatService *services.ChatService

func SetChatService(service *services.ChatService) {
	chatService = service
}

func GetChatLogs(c *gin.Context) {
	callerID, _ := middlewares.CurrentUserID(c)
	logs, err := chatService.Logs(callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
