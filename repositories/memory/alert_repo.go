package memory

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type AlertRepo struct {
	s *Store
}

func NewAlertRepository(s *Store) repositories.AlertRepository {
	return &AlertRepo{s: s}
}

func (r *AlertRepo) ListByUser(userID uint) ([]models.Alert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Alert{}
	for _, alert := range r.s.alerts {
		if alert.UserID == userID {
			out = append(out, alert)
		}
	}
	return out, nil
}

func (r *AlertRepo) Create(alert *models.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	alert.ID = r.s.nextID()
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	r.s.alerts = append(r.s.alerts, *alert)
	return nil
}

func (r *AlertRepo) Patch(userID, id uint, apply func(*models.Alert)) (models.Alert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.alerts {
		if r.s.alerts[i].ID == id && r.s.alerts[i].UserID == userID {
			apply(&r.s.alerts[i])
			return r.s.alerts[i], nil
		}
	}
	return models.Alert{}, repositories.ErrNotFound
}

func (r *AlertRepo) DeleteByUser(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.alerts[:0]
	for _, alert := range r.s.alerts {
		if alert.UserID != userID {
			kept = append(kept, alert)
		}
	}
	r.s.alerts = kept
	return nil
}

func (r *AlertRepo) DeleteByChild(childID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.alerts[:0]
	for _, alert := range r.s.alerts {
		if alert.ChildID != nil && *alert.ChildID == childID {
			continue
		}
		kept = append(kept, alert)
	}
	r.s.alerts = kept
	return nil
}
