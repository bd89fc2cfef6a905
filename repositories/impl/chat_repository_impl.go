package impl

import (
	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
)

type ChatRepositoryImpl struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) repositories.ChatRepository {
	return &ChatRepositoryImpl{DB: db}
}

func (r *ChatRepositoryImpl) ListByChildren(childIDs []uint) ([]models.ChatLog, error) {
	logs := []models.ChatLog{}
	if len(childIDs) == 0 {
		return logs, nil
	}
	err := r.DB.Where("child_id IN ?", childIDs).Order("id").Find(&logs).Error
	return logs, err
}

func (r *ChatRepositoryImpl) Create(log *models.ChatLog) error {
	return r.DB.Create(log).Error
}

func (r *ChatRepositoryImpl) DeleteByChild(childID uint) error {
	return r.DB.Where("child_id = ?", childID).Delete(&models.ChatLog{}).Error
}
