package controllers

import (
	"net/http"
	"strconv"

	"FaithNest/middlewares"
	"FaithNest/models"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var prayerService *services.PrayerService

func SetPrayerService(service *services.PrayerService) {
	prayerService = service
}

// GetPrayerEntries serves the owner's journal. An anonymous caller gets an
// empty list, not a 401; that mirrors the behavior clients were built
// against.
func GetPrayerEntries(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.PrayerEntry{})
		return
	}

	entries, err := prayerService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func AddPrayerEntry(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Date    string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := prayerService.Create(userID, input.Title, input.Content, input.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func UpdatePrayerEntry(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var input struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Date    *string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := prayerService.Update(userID, uint(id), services.PrayerPatch{
		Title:   input.Title,
		Content: input.Content,
		Date:    input.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeletePrayerEntry(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := prayerService.Delete(userID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
