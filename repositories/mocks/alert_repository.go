package mocks

import (
	"FaithNest/models"

	"github.com/stretchr/testify/mock"
)

type AlertRepository struct {
	mock.Mock
}

func (m *AlertRepository) ListByUser(userID uint) ([]models.Alert, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *AlertRepository) Create(alert *models.Alert) error {
	args := m.Called(alert)
	return args.Error(0)
}

func (m *AlertRepository) Patch(userID, id uint, apply func(*models.Alert)) (models.Alert, error) {
	args := m.Called(userID, id, apply)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (m *AlertRepository) DeleteByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *AlertRepository) DeleteByChild(childID uint) error {
	args := m.Called(childID)
	return args.Error(0)
}
