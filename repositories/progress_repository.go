package repositories

import "FaithNest/models"

type ProgressRepository interface {
	// Upsert keeps one row per (user, lesson); insertion order of first
	// upsert is preserved for listing.
	Upsert(progress *models.LessonProgress) error
	ListByUser(userID uint) ([]models.LessonProgress, error)
	DeleteByUser(userID uint) error

	// SaveScripture keeps one row per (user, scripture reference); a
	// repeated save for the same verse replaces the earlier one.
	SaveScripture(progress *models.ScriptureProgress) error
	ListScriptureByUser(userID uint) ([]models.ScriptureProgress, error)
	DeleteScriptureByUser(userID uint) error
}
