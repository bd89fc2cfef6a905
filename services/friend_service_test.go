package services

import (
	"testing"

	"FaithNest/models"
	"FaithNest/repositories/memory"

	"github.com/stretchr/testify/assert"
)

func newFriendFixture(t *testing.T) (*FriendService, *AlertService, models.User, models.User) {
	store := memory.NewStore()
	sessions := NewSessionService(memory.NewSessionRepository(store), 0)
	auth := NewAuthService(memory.NewUserRepository(store), sessions)
	users := NewUserService(
		memory.NewUserRepository(store),
		memory.NewPrayerRepository(store),
		memory.NewFriendRequestRepository(store),
		memory.NewGameRepository(store),
		memory.NewAlertRepository(store),
		memory.NewProgressRepository(store),
		memory.NewChatRepository(store),
		sessions,
	)
	alerts := NewAlertService(memory.NewAlertRepository(store))
	friends := NewFriendService(memory.NewFriendRequestRepository(store), memory.NewUserRepository(store), alerts)

	parent := signupParent(t, auth, "mom")
	child, err := users.CreateChild(parent.ID, "kid1", "x", "Kid One")
	assert.NoError(t, err)

	return friends, alerts, parent, child
}

func TestFriendRequestVisibleToHouseholdOnly(t *testing.T) {
	friends, _, parent, child := newFriendFixture(t)

	req, err := friends.Report(child.ID, "Tommy")
	assert.NoError(t, err)
	assert.Equal(t, models.FriendRequestPending, req.Status)

	forChild, err := friends.List(child.ID)
	assert.NoError(t, err)
	assert.Len(t, forChild, 1)

	forParent, err := friends.List(parent.ID)
	assert.NoError(t, err)
	assert.Len(t, forParent, 1)
}

func TestFriendRequestRaisesParentAlert(t *testing.T) {
	friends, alerts, parent, child := newFriendFixture(t)

	_, err := friends.Report(child.ID, "Tommy")
	assert.NoError(t, err)

	raised, err := alerts.List(parent.ID)
	assert.NoError(t, err)
	assert.Len(t, raised, 1)
	assert.Equal(t, models.AlertFriendRequest, raised[0].Type)
	assert.Equal(t, child.ID, *raised[0].ChildID)
}

func TestFriendRequestStatusUpdate(t *testing.T) {
	friends, _, parent, child := newFriendFixture(t)

	req, err := friends.Report(child.ID, "Tommy")
	assert.NoError(t, err)

	updated, err := friends.UpdateStatus(parent.ID, req.ID, models.FriendRequestApproved)
	assert.NoError(t, err)
	assert.Equal(t, models.FriendRequestApproved, updated.Status)

	_, err = friends.UpdateStatus(parent.ID, req.ID, "maybe")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFriendRequestDeleteMissingIsNotFound(t *testing.T) {
	friends, _, parent, child := newFriendFixture(t)

	req, err := friends.Report(child.ID, "Tommy")
	assert.NoError(t, err)

	// Deleting an id that is not there fails and changes nothing.
	assert.ErrorIs(t, friends.Delete(parent.ID, req.ID+100), ErrNotFound)

	remaining, err := friends.List(parent.ID)
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
}
