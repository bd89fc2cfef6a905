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

func TestChildrenRequiresParentRole(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(router, http.MethodGet, "/api/users/children", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, childToken := signupAndLogin(t, router, "kid1", "child")
	w = doJSON(router, http.MethodGet, "/api/users/children", childToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestParentManagesChildren(t *testing.T) {
	router := setupTestRouter()
	_, parentToken := signupAndLogin(t, router, "mom", "parent")

	w := doJSON(router, http.MethodPost, "/api/users/child", parentToken, gin.H{
		"username":    "kid1",
		"password":    "x",
		"displayName": "Kid One",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var child models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &child))
	assert.Equal(t, "child", child.Role)

	w = doJSON(router, http.MethodGet, "/api/users/children", parentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var roster []models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	assert.Len(t, roster, 1)
	assert.Equal(t, child.ID, roster[0].ID)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/users/child/%d", child.ID), parentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/users/children", parentToken, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	assert.Empty(t, roster)
}

func TestParentCannotDeleteOthersChild(t *testing.T) {
	router := setupTestRouter()
	_, momToken := signupAndLogin(t, router, "mom", "parent")
	_, strangerToken := signupAndLogin(t, router, "stranger", "parent")

	w := doJSON(router, http.MethodPost, "/api/users/child", momToken, gin.H{
		"username": "kid1",
		"password": "x",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var child models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &child))

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/users/child/%d", child.ID), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Other parents never see the child either.
	w = doJSON(router, http.MethodGet, "/api/users/children", strangerToken, nil)
	var roster []models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	assert.Empty(t, roster)
}
