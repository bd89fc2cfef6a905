package services

import (
	"sync"
	"testing"

	"FaithNest/models"
	"FaithNest/repositories"
	"FaithNest/repositories/memory"
	"FaithNest/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetApprovalOutsideHouseholdIsNotFound(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockGameRepo := new(mocks.GameRepository)
	mockAlertRepo := new(mocks.AlertRepository)

	games := NewGameService(mockGameRepo, mockUserRepo, NewAlertService(mockAlertRepo))

	parentID := uint(1)
	mockUserRepo.On("FindByID", parentID).Return(models.User{ID: parentID, Role: models.RoleParent}, nil)
	mockUserRepo.On("ListChildren", parentID).Return([]models.User{{ID: 2, Role: models.RoleChild}}, nil)
	// Record 42 belongs to some other household; the scoped patch misses.
	mockGameRepo.On("PatchScoped", []uint{2}, uint(42), mock.Anything).
		Return(models.GameRecord{}, repositories.ErrNotFound)

	approved := true
	_, err := games.SetApproval(parentID, 42, &approved)
	assert.ErrorIs(t, err, ErrNotFound)

	mockUserRepo.AssertExpectations(t)
	mockGameRepo.AssertExpectations(t)
}

func TestReportUnapprovedGameAlertsParent(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockGameRepo := new(mocks.GameRepository)
	mockAlertRepo := new(mocks.AlertRepository)

	games := NewGameService(mockGameRepo, mockUserRepo, NewAlertService(mockAlertRepo))

	parentID := uint(1)
	childID := uint(2)
	mockUserRepo.On("FindByID", childID).Return(models.User{
		ID:          childID,
		Role:        models.RoleChild,
		ParentID:    &parentID,
		DisplayName: "Kid One",
	}, nil)
	mockGameRepo.On("Accumulate", mock.MatchedBy(func(r *models.GameRecord) bool {
		return r.ChildID == childID && r.GameName == "Blocky Builder" && r.ScreenTime == 25
	})).Return(nil)
	mockAlertRepo.On("Create", mock.MatchedBy(func(a *models.Alert) bool {
		return a.UserID == parentID && a.Type == models.AlertGameActivity && *a.ChildID == childID
	})).Return(nil)

	_, err := games.Report(childID, "Blocky Builder", 25, "E")
	assert.NoError(t, err)

	mockGameRepo.AssertExpectations(t)
	mockAlertRepo.AssertExpectations(t)
}

func TestReportAccumulatesExistingGame(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockGameRepo := new(mocks.GameRepository)
	mockAlertRepo := new(mocks.AlertRepository)

	games := NewGameService(mockGameRepo, mockUserRepo, NewAlertService(mockAlertRepo))

	childID := uint(2)
	approved := true
	mockUserRepo.On("FindByID", childID).Return(models.User{ID: childID, Role: models.RoleChild}, nil)
	mockGameRepo.On("Accumulate", mock.Anything).Run(func(args mock.Arguments) {
		record := args.Get(0).(*models.GameRecord)
		record.ID = 10
		record.ScreenTime = 55
		record.Approved = &approved
	}).Return(nil)

	record, err := games.Report(childID, "Blocky Builder", 25, "")
	assert.NoError(t, err)
	assert.Equal(t, 55, record.ScreenTime)

	// Approved game: no alert.
	mockAlertRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockGameRepo.AssertExpectations(t)
}

func TestConcurrentReportsLoseNoMinutes(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	games := NewGameService(
		memory.NewGameRepository(store),
		users,
		NewAlertService(memory.NewAlertRepository(store)),
	)

	child := models.User{Username: "kid", Role: models.RoleChild}
	assert.NoError(t, users.Create(&child))

	const reports = 100
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < reports; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := games.Report(child.ID, "Minecraft", 5, "E")
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	records, err := games.List(child.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, reports*5, records[0].ScreenTime)
}
