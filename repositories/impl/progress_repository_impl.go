package impl

import (
	"errors"

	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
)

type ProgressRepositoryImpl struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressRepositoryImpl{DB: db}
}

func (r *ProgressRepositoryImpl) Upsert(progress *models.LessonProgress) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.LessonProgress
		err := tx.Where("user_id = ? AND lesson_id = ?", progress.UserID, progress.LessonID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(progress).Error
			}
			return err
		}
		progress.ID = existing.ID
		return tx.Save(progress).Error
	})
}

func (r *ProgressRepositoryImpl) ListByUser(userID uint) ([]models.LessonProgress, error) {
	entries := []models.LessonProgress{}
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&entries).Error
	return entries, err
}

func (r *ProgressRepositoryImpl) DeleteByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.LessonProgress{}).Error
}

func (r *ProgressRepositoryImpl) SaveScripture(progress *models.ScriptureProgress) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.ScriptureProgress
		err := tx.Where("user_id = ? AND scripture_reference = ?",
			progress.UserID, progress.ScriptureReference).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(progress).Error
			}
			return err
		}
		progress.ID = existing.ID
		return tx.Save(progress).Error
	})
}

func (r *ProgressRepositoryImpl) ListScriptureByUser(userID uint) ([]models.ScriptureProgress, error) {
	entries := []models.ScriptureProgress{}
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&entries).Error
	return entries, err
}

func (r *ProgressRepositoryImpl) DeleteScriptureByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.ScriptureProgress{}).Error
}
