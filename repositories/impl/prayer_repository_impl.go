package impl

import (
	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrayerRepositoryImpl struct {
	DB *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) repositories.PrayerRepository {
	return &PrayerRepositoryImpl{DB: db}
}

func (r *PrayerRepositoryImpl) ListByUser(userID uint) ([]models.PrayerEntry, error) {
	entries := []models.PrayerEntry{}
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&entries).Error
	return entries, err
}

func (r *PrayerRepositoryImpl) Create(entry *models.PrayerEntry) error {
	return r.DB.Create(entry).Error
}

// Patch runs the read and the write in one transaction with the row
// locked, so concurrent partial updates cannot overwrite each other.
func (r *PrayerRepositoryImpl) Patch(userID, id uint, apply func(*models.PrayerEntry)) (models.PrayerEntry, error) {
	var entry models.PrayerEntry
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND id = ?", userID, id).
			First(&entry).Error; err != nil {
			return translate(err)
		}
		apply(&entry)
		return tx.Save(&entry).Error
	})
	if err != nil {
		return models.PrayerEntry{}, err
	}
	return entry, nil
}

func (r *PrayerRepositoryImpl) Delete(userID, id uint) error {
	result := r.DB.Where("user_id = ?", userID).Delete(&models.PrayerEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *PrayerRepositoryImpl) DeleteByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.PrayerEntry{}).Error
}
