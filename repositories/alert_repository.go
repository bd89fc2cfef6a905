package repositories

import "FaithNest/models"

type AlertRepository interface {
	ListByUser(userID uint) ([]models.Alert, error)
	Create(alert *models.Alert) error
	// Patch mutates the owner's alert in place under the write lock;
	// concurrent flag updates both land.
	Patch(userID, id uint, apply func(*models.Alert)) (models.Alert, error)
	DeleteByUser(userID uint) error
	// DeleteByChild removes alerts that reference the child, regardless of
	// which user they were addressed to.
	DeleteByChild(childID uint) error
}
