package services

import (
	"sync"
	"testing"

	"FaithNest/models"
	"FaithNest/repositories/memory"

	"github.com/stretchr/testify/assert"
)

func TestMarkAcrossOwnersIsNotFound(t *testing.T) {
	alerts := NewAlertService(memory.NewAlertRepository(memory.NewStore()))

	assert.NoError(t, alerts.Raise(1, nil, models.AlertGameActivity, "played"))
	list, err := alerts.List(1)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	read := true
	_, err = alerts.Mark(2, list[0].ID, AlertPatch{Read: &read})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentMarksKeepBothFlags(t *testing.T) {
	alerts := NewAlertService(memory.NewAlertRepository(memory.NewStore()))

	assert.NoError(t, alerts.Raise(1, nil, models.AlertFriendRequest, "new request"))
	list, err := alerts.List(1)
	assert.NoError(t, err)
	id := list[0].ID

	// One caller marks the alert read, another marks it handled, at the
	// same time. Neither flag may be dropped.
	on := true
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := alerts.Mark(1, id, AlertPatch{Read: &on})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := alerts.Mark(1, id, AlertPatch{Handled: &on})
		assert.NoError(t, err)
	}()
	wg.Wait()

	list, err = alerts.List(1)
	assert.NoError(t, err)
	assert.True(t, list[0].Read)
	assert.True(t, list[0].Handled)
}
