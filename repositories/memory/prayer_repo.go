package memory

import (
	"FaithNest/models"
	"FaithNest/repositories"
)

type PrayerRepo struct {
	s *Store
}

func NewPrayerRepository(s *Store) repositories.PrayerRepository {
	return &PrayerRepo{s: s}
}

func (r *PrayerRepo) ListByUser(userID uint) ([]models.PrayerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.prayers[userID]
	out := make([]models.PrayerEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *PrayerRepo) Create(entry *models.PrayerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = r.s.nextID()
	r.s.prayers[entry.UserID] = append(r.s.prayers[entry.UserID], *entry)
	return nil
}

func (r *PrayerRepo) Patch(userID, id uint, apply func(*models.PrayerEntry)) (models.PrayerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := r.s.prayers[userID]
	for i := range entries {
		if entries[i].ID == id {
			apply(&entries[i])
			return entries[i], nil
		}
	}
	return models.PrayerEntry{}, repositories.ErrNotFound
}

func (r *PrayerRepo) Delete(userID, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := r.s.prayers[userID]
	for i, e := range entries {
		if e.ID == id {
			r.s.prayers[userID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *PrayerRepo) DeleteByUser(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.prayers, userID)
	return nil
}
