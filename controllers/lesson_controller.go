package controllers

import (
	"net/http"

	"FaithNest/middlewares"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var lessonService *services.LessonService

func SetLessonService(service *services.LessonService) {
	lessonService = service
}

func GetLessons(c *gin.Context) {
	c.JSON(http.StatusOK, lessonService.Lessons())
}

func GetLessonProgress(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	progress, err := lessonService.Progress(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func UpsertLessonProgress(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)

	var input struct {
		LessonID  uint `json:"lessonId" binding:"required"`
		Completed bool `json:"completed"`
		Score     *int `json:"score"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := lessonService.UpsertProgress(userID, input.LessonID, input.Completed, input.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func GetScriptureProgress(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	progress, err := lessonService.ScriptureProgress(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func SaveScriptureProgress(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)

	var input struct {
		ScriptureReference string `json:"scriptureReference" binding:"required"`
		Content            string `json:"content"`
		Memorized          bool   `json:"memorized"`
		Progress           int    `json:"progress"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := lessonService.SaveScriptureProgress(userID, services.ScriptureInput{
		ScriptureReference: input.ScriptureReference,
		Content:            input.Content,
		Memorized:          input.Memorized,
		Progress:           input.Progress,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
