package services

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type LessonService struct {
	ProgressRepo repositories.ProgressRepository
}

func NewLessonService(progressRepo repositories.ProgressRepository) *LessonService {
	return &LessonService{ProgressRepo: progressRepo}
}

func (s *LessonService) Lessons() []models.Lesson {
	return lessonCatalog
}

func (s *LessonService) lessonExists(lessonID uint) bool {
	for _, l := range lessonCatalog {
		if l.ID == lessonID {
			return true
		}
	}
	return false
}

// Progress returns the caller's progress as a flat list, one row per lesson
// the user has touched, in the order they were first recorded.
func (s *LessonService) Progress(userID uint) ([]models.LessonProgress, error) {
	return s.ProgressRepo.ListByUser(userID)
}

func (s *LessonService) UpsertProgress(userID, lessonID uint, completed bool, score *int) (models.LessonProgress, error) {
	if !s.lessonExists(lessonID) {
		return models.LessonProgress{}, ErrNotFound
	}

	progress := models.LessonProgress{
		UserID:    userID,
		LessonID:  lessonID,
		Completed: completed,
		Score:     score,
	}
	if completed {
		now := time.Now()
		progress.CompletedAt = &now
	}
	if err := s.ProgressRepo.Upsert(&progress); err != nil {
		return models.LessonProgress{}, err
	}
	return progress, nil
}

// ScriptureInput is a memorization update for one verse or passage.
type ScriptureInput struct {
	ScriptureReference string
	Content            string
	Memorized          bool
	Progress           int
}

func (s *LessonService) ScriptureProgress(userID uint) ([]models.ScriptureProgress, error) {
	return s.ProgressRepo.ListScriptureByUser(userID)
}

// SaveScriptureProgress records memorization practice. One row per verse:
// practicing the same reference again replaces the earlier state.
func (s *LessonService) SaveScriptureProgress(userID uint, in ScriptureInput) (models.ScriptureProgress, error) {
	if in.ScriptureReference == "" || in.Progress < 0 || in.Progress > 100 {
		return models.ScriptureProgress{}, ErrValidation
	}

	progress := models.ScriptureProgress{
		UserID:             userID,
		ScriptureReference: in.ScriptureReference,
		Content:            in.Content,
		Memorized:          in.Memorized,
		Progress:           in.Progress,
	}
	if err := s.ProgressRepo.SaveScripture(&progress); err != nil {
		return models.ScriptureProgress{}, err
	}
	return progress, nil
}
