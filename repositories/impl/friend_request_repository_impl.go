package impl

import (
	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendRequestRepositoryImpl struct {
	DB *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) repositories.FriendRequestRepository {
	return &FriendRequestRepositoryImpl{DB: db}
}

func (r *FriendRequestRepositoryImpl) ListByChildren(childIDs []uint) ([]models.FriendRequest, error) {
	requests := []models.FriendRequest{}
	if len(childIDs) == 0 {
		return requests, nil
	}
	err := r.DB.Where("child_id IN ?", childIDs).Order("id").Find(&requests).Error
	return requests, err
}

func (r *FriendRequestRepositoryImpl) Create(req *models.FriendRequest) error {
	return r.DB.Create(req).Error
}

func (r *FriendRequestRepositoryImpl) PatchScoped(childIDs []uint, id uint, apply func(*models.FriendRequest)) (models.FriendRequest, error) {
	var req models.FriendRequest
	if len(childIDs) == 0 {
		return req, repositories.ErrNotFound
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND child_id IN ?", id, childIDs).
			First(&req).Error; err != nil {
			return translate(err)
		}
		apply(&req)
		return tx.Save(&req).Error
	})
	if err != nil {
		return models.FriendRequest{}, err
	}
	return req, nil
}

func (r *FriendRequestRepositoryImpl) Delete(childIDs []uint, id uint) error {
	if len(childIDs) == 0 {
		return repositories.ErrNotFound
	}
	result := r.DB.Where("id = ? AND child_id IN ?", id, childIDs).Delete(&models.FriendRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *FriendRequestRepositoryImpl) DeleteByChild(childID uint) error {
	return r.DB.Where("child_id = ?", childID).Delete(&models.FriendRequest{}).Error
}
