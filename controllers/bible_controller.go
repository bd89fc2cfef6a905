package controllers

import (
	"net/http"

	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

var bibleService *services.BibleService

func SetBibleService(service *services.BibleService) {
	bibleService = service
}

func GetBibleBooks(c *gin.Context) {
	c.JSON(http.StatusOK, bibleService.Books())
}

func GetBibleVersions(c *gin.Context) {
	c.JSON(http.StatusOK, bibleService.Versions())
}

func GetBibleSearch(c *gin.Context) {
	c.JSON(http.StatusOK, bibleService.Search(c.Query("q")))
}

// GetBibleContent forwards ?passage=John+3:16 to the content provider and
// relays whatever it answers.
func GetBibleContent(c *gin.Context) {
	passage := c.Query("passage")
	payload, err := bibleService.Passage(c.Request.Context(), passage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
