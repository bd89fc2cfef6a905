package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"FaithNest/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPrayerJournalAnonymousGetsEmptyList(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(router, http.MethodGet, "/api/prayer-journal", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPrayerJournalAnonymousWriteIs401(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(router, http.MethodPost, "/api/prayer-journal", "", gin.H{"title": "t"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrayerJournalOwnerCRUD(t *testing.T) {
	router := setupTestRouter()
	_, token := signupAndLogin(t, router, "kid1", "child")

	w := doJSON(router, http.MethodPost, "/api/prayer-journal", token, gin.H{
		"title":   "For grandma",
		"content": "Please help her feel better",
		"date":    "2025-04-01",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var entry models.PrayerEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.NotZero(t, entry.ID)

	// Partial update keeps the title.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/prayer-journal/%d", entry.ID), token, gin.H{
		"content": "She is doing better now",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.PrayerEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "For grandma", updated.Title)
	assert.Equal(t, "She is doing better now", updated.Content)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/prayer-journal/%d", entry.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/prayer-journal", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPrayerJournalIsolationBetweenUsers(t *testing.T) {
	router := setupTestRouter()
	_, tokenA := signupAndLogin(t, router, "kid1", "child")
	_, tokenB := signupAndLogin(t, router, "kid2", "child")

	w := doJSON(router, http.MethodPost, "/api/prayer-journal", tokenA, gin.H{"title": "Mine"})
	assert.Equal(t, http.StatusOK, w.Code)
	var entry models.PrayerEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))

	// B sees nothing of A's journal.
	w = doJSON(router, http.MethodGet, "/api/prayer-journal", tokenB, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// B cannot update or delete A's entry by id.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/prayer-journal/%d", entry.ID), tokenB, gin.H{"title": "Stolen"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/prayer-journal/%d", entry.ID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A's entry is untouched.
	w = doJSON(router, http.MethodGet, "/api/prayer-journal", tokenA, nil)
	var entries []models.PrayerEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "Mine", entries[0].Title)
}
