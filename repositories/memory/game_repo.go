package memory

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type GameRepo struct {
	s *Store
}

func NewGameRepository(s *Store) repositories.GameRepository {
	return &GameRepo{s: s}
}

func (r *GameRepo) ListByChildren(childIDs []uint) ([]models.GameRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.GameRecord{}
	for _, record := range r.s.games {
		if contains(childIDs, record.ChildID) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *GameRepo) Create(record *models.GameRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record.ID = r.s.nextID()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	r.s.games = append(r.s.games, *record)
	return nil
}

// Accumulate does the find-or-create in one lock scope, so concurrent
// reports for the same child and game land on a single record.
func (r *GameRepo) Accumulate(record *models.GameRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.games {
		existing := &r.s.games[i]
		if existing.ChildID == record.ChildID && existing.GameName == record.GameName {
			existing.ScreenTime += record.ScreenTime
			existing.LastPlayed = record.LastPlayed
			*record = *existing
			return nil
		}
	}

	record.ID = r.s.nextID()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	r.s.games = append(r.s.games, *record)
	return nil
}

func (r *GameRepo) PatchScoped(childIDs []uint, id uint, apply func(*models.GameRecord)) (models.GameRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.games {
		if r.s.games[i].ID == id && contains(childIDs, r.s.games[i].ChildID) {
			apply(&r.s.games[i])
			return r.s.games[i], nil
		}
	}
	return models.GameRecord{}, repositories.ErrNotFound
}

func (r *GameRepo) DeleteByChild(childID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.games[:0]
	for _, record := range r.s.games {
		if record.ChildID != childID {
			kept = append(kept, record)
		}
	}
	r.s.games = kept
	return nil
}
