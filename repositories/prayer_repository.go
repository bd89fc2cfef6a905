package repositories

import "FaithNest/models"

type PrayerRepository interface {
	ListByUser(userID uint) ([]models.PrayerEntry, error)
	Create(entry *models.PrayerEntry) error
	// Patch applies the mutation to the entry while holding the store's
	// write lock, so two concurrent patches cannot overwrite each other.
	// The lookup is owner-scoped: an id that belongs to another user is
	// ErrNotFound, not a leak.
	Patch(userID, id uint, apply func(*models.PrayerEntry)) (models.PrayerEntry, error)
	Delete(userID, id uint) error
	DeleteByUser(userID uint) error
}
