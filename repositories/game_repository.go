package repositories

import "FaithNest/models"

type GameRepository interface {
	ListByChildren(childIDs []uint) ([]models.GameRecord, error)
	Create(record *models.GameRecord) error
	// Accumulate is the atomic find-or-create for play reports: when a
	// record for the same (child, game) exists its screen time grows by
	// record.ScreenTime, otherwise the record is inserted. The merged row
	// is loaded back into record. Concurrent reports never drop minutes.
	Accumulate(record *models.GameRecord) error
	// PatchScoped mutates the record in place under the write lock; the
	// lookup is limited to the given child ids.
	PatchScoped(childIDs []uint, id uint, apply func(*models.GameRecord)) (models.GameRecord, error)
	DeleteByChild(childID uint) error
}
