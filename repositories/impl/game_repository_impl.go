package impl

import (
	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepositoryImpl struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) repositories.GameRepository {
	return &GameRepositoryImpl{DB: db}
}

func (r *GameRepositoryImpl) ListByChildren(childIDs []uint) ([]models.GameRecord, error) {
	records := []models.GameRecord{}
	if len(childIDs) == 0 {
		return records, nil
	}
	err := r.DB.Where("child_id IN ?", childIDs).Order("id").Find(&records).Error
	return records, err
}

func (r *GameRepositoryImpl) Create(record *models.GameRecord) error {
	return r.DB.Create(record).Error
}

// Accumulate leans on the (child_id, game_name) unique index: the insert
// either lands or turns into an in-database increment, so two concurrent
// reports cannot race past each other.
func (r *GameRepositoryImpl) Accumulate(record *models.GameRecord) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "child_id"}, {Name: "game_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"screen_time": gorm.Expr("game_records.screen_time + ?", record.ScreenTime),
			"last_played": record.LastPlayed,
		}),
	}).Create(record).Error
	if err != nil {
		return err
	}

	var saved models.GameRecord
	if err := r.DB.Where("child_id = ? AND game_name = ?", record.ChildID, record.GameName).
		First(&saved).Error; err != nil {
		return translate(err)
	}
	*record = saved
	return nil
}

func (r *GameRepositoryImpl) PatchScoped(childIDs []uint, id uint, apply func(*models.GameRecord)) (models.GameRecord, error) {
	var record models.GameRecord
	if len(childIDs) == 0 {
		return record, repositories.ErrNotFound
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND child_id IN ?", id, childIDs).
			First(&record).Error; err != nil {
			return translate(err)
		}
		apply(&record)
		return tx.Save(&record).Error
	})
	if err != nil {
		return models.GameRecord{}, err
	}
	return record, nil
}

func (r *GameRepositoryImpl) DeleteByChild(childID uint) error {
	return r.DB.Where("child_id = ?", childID).Delete(&models.GameRecord{}).Error
}
