package mocks

import (
	"FaithNest/models"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(id uint) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) FindByUsername(username string) (models.User, error) {
	args := m.Called(username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) ListChildren(parentID uint) ([]models.User, error) {
	args := m.Called(parentID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
