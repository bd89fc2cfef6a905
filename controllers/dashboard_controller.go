package controllers

import (
	"net/http"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var dashboardService *services.DashboardService

func SetDashboardService(service *services.DashboardService) {
	dashboardService = service
}

func GetChildDashboard(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	dashboard, err := dashboardService.ChildDashboard(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
