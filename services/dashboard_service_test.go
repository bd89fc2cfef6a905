package services

import (
	"testing"

	"FaithNest/models"
	"FaithNest/repositories/memory"

	"github.com/stretchr/testify/assert"
)

func newDashboardFixture(t *testing.T) (*DashboardService, models.User, models.User, *memory.Store) {
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

	dashboard := NewDashboardService(
		memory.NewUserRepository(store),
		memory.NewGameRepository(store),
		memory.NewProgressRepository(store),
		NewDevotionalService(),
		NewLessonService(memory.NewProgressRepository(store)),
	)

	parent := signupParent(t, auth, "mom")
	child, err := users.CreateChild(parent.ID, "kid1", "x", "Kid One")
	assert.NoError(t, err)

	return dashboard, parent, child, store
}

func TestDashboardRequiresChildRole(t *testing.T) {
	dashboard, parent, _, _ := newDashboardFixture(t)

	_, err := dashboard.ChildDashboard(parent.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = dashboard.ChildDashboard(999)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDashboardComputesGameTimeFromRecords(t *testing.T) {
	dashboard, _, child, store := newDashboardFixture(t)

	gameRepo := memory.NewGameRepository(store)
	assert.NoError(t, gameRepo.Create(&models.GameRecord{ChildID: child.ID, GameName: "A", ScreenTime: 20}))
	assert.NoError(t, gameRepo.Create(&models.GameRecord{ChildID: child.ID, GameName: "B", ScreenTime: 15}))

	view, err := dashboard.ChildDashboard(child.ID)
	assert.NoError(t, err)

	assert.Equal(t, child.ID, view.User.ID)
	assert.Equal(t, "Kid One", view.User.DisplayName)
	assert.Equal(t, 35, view.GameTime.Earned)
	assert.Equal(t, 25, view.GameTime.Available)
	assert.Equal(t, 60, view.GameTime.Total)
	assert.NotEmpty(t, view.DailyDevotional.Title)
	assert.Len(t, view.RecentLessons, 3)
}

func TestDashboardGameTimeCapsAtTotal(t *testing.T) {
	dashboard, _, child, store := newDashboardFixture(t)

	gameRepo := memory.NewGameRepository(store)
	assert.NoError(t, gameRepo.Create(&models.GameRecord{ChildID: child.ID, GameName: "A", ScreenTime: 500}))

	view, err := dashboard.ChildDashboard(child.ID)
	assert.NoError(t, err)
	assert.Equal(t, 60, view.GameTime.Earned)
	assert.Equal(t, 0, view.GameTime.Available)
}
