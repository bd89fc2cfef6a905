package memory

import (
	"FaithNest/models"
	"FaithNest/repositories"
)

type ProgressRepo struct {
	s *Store
}

func NewProgressRepository(s *Store) repositories.ProgressRepository {
	return &ProgressRepo{s: s}
}

func (r *ProgressRepo) Upsert(progress *models.LessonProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := r.s.lessonProgress[progress.UserID]
	for i, e := range entries {
		if e.LessonID == progress.LessonID {
			progress.ID = e.ID
			entries[i] = *progress
			return nil
		}
	}
	progress.ID = r.s.nextID()
	r.s.lessonProgress[progress.UserID] = append(entries, *progress)
	return nil
}

func (r *ProgressRepo) ListByUser(userID uint) ([]models.LessonProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.lessonProgress[userID]
	out := make([]models.LessonProgress, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *ProgressRepo) DeleteByUser(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.lessonProgress, userID)
	return nil
}

func (r *ProgressRepo) SaveScripture(progress *models.ScriptureProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := r.s.scriptureProgress[progress.UserID]
	for i, e := range entries {
		if e.ScriptureReference == progress.ScriptureReference {
			progress.ID = e.ID
			entries[i] = *progress
			return nil
		}
	}
	progress.ID = r.s.nextID()
	r.s.scriptureProgress[progress.UserID] = append(entries, *progress)
	return nil
}

func (r *ProgressRepo) ListScriptureByUser(userID uint) ([]models.ScriptureProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.scriptureProgress[userID]
	out := make([]models.ScriptureProgress, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *ProgressRepo) DeleteScriptureByUser(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.scriptureProgress, userID)
	return nil
}
