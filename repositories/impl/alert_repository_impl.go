package impl

import (
	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AlertRepositoryImpl struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) repositories.AlertRepository {
	return &AlertRepositoryImpl{DB: db}
}

func (r *AlertRepositoryImpl) ListByUser(userID uint) ([]models.Alert, error) {
	alerts := []models.Alert{}
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepositoryImpl) Create(alert *models.Alert) error {
	return r.DB.Create(alert).Error
}

func (r *AlertRepositoryImpl) Patch(userID, id uint, apply func(*models.Alert)) (models.Alert, error) {
	var alert models.Alert
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND id = ?", userID, id).
			First(&alert).Error; err != nil {
			return translate(err)
		}
		apply(&alert)
		return tx.Save(&alert).Error
	})
	if err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (r *AlertRepositoryImpl) DeleteByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.Alert{}).Error
}

func (r *AlertRepositoryImpl) DeleteByChild(childID uint) error {
	return r.DB.Where("child_id = ?", childID).Delete(&models.Alert{}).Error
}
