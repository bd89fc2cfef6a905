package mocks

import (
	"FaithNest/models"

	"github.com/stretchr/testify/mock"
)

type GameRepository struct {
	mock.Mock
}

func (m *GameRepository) ListByChildren(childIDs []uint) ([]models.GameRecord, error) {
	args := m.Called(childIDs)
	return args.Get(0).([]models.GameRecord), args.Error(1)
}

func (m *GameRepository) Create(record *models.GameRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *GameRepository) Accumulate(record *models.GameRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *GameRepository) PatchScoped(childIDs []uint, id uint, apply func(*models.GameRecord)) (models.GameRecord, error) {
	args := m.Called(childIDs, id, apply)
	return args.Get(0).(models.GameRecord), args.Error(1)
}

func (m *GameRepository) DeleteByChild(childID uint) error {
	args := m.Called(childID)
	return args.Error(0)
}
