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

func TestAlertEndpointsTolerateAnonymous(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(router, http.MethodGet, "/api/alerts", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/alerts/recent", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/notifications/unread", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestFriendRequestAlertFlow(t *testing.T) {
	router := setupTestRouter()
	_, parentToken := signupAndLogin(t, router, "mom", "parent")

	w := doJSON(router, http.MethodPost, "/api/users/child", parentToken, gin.H{
		"username": "kid1",
		"password": "x",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{"username": "kid1", "password": "x"})
	assert.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	childToken := loginResp.Token

	// Child reports a friend request; the parent gets an unread alert.
	w = doJSON(router, http.MethodPost, "/api/friend-requests", childToken, gin.H{"friendName": "Tommy"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/notifications/unread", parentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/alerts/recent", parentToken, nil)
	var alerts []models.Alert
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertFriendRequest, alerts[0].Type)

	// Mark handled: it leaves /recent but stays in the full list.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/alerts/%d", alerts[0].ID), parentToken, gin.H{
		"read":    true,
		"handled": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/alerts/recent", parentToken, nil)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/alerts", parentToken, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 1)
	assert.True(t, alerts[0].Handled)

	// The child does not own the parent's alert.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/alerts/%d", alerts[0].ID), childToken, gin.H{"read": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
