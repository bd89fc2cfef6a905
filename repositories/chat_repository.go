package repositories

import "FaithNest/models"

type ChatRepository interface {
	ListByChildren(childIDs []uint) ([]models.ChatLog, error)
	Create(log *models.ChatLog) error
	DeleteByChild(childID uint) error
}
