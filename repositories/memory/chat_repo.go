package memory

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type ChatRepo struct {
	s *Store
}

func NewChatRepository(s *Store) repositories.ChatRepository {
	return &ChatRepo{s: s}
}

func (r *ChatRepo) ListByChildren(childIDs []uint) ([]models.ChatLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.ChatLog{}
	for _, log := range r.s.chatLogs {
		if contains(childIDs, log.ChildID) {
			out = append(out, log)
		}
	}
	return out, nil
}

func (r *ChatRepo) Create(log *models.ChatLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	log.ID = r.s.nextID()
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	r.s.chatLogs = append(r.s.chatLogs, *log)
	return nil
}

func (r *ChatRepo) DeleteByChild(childID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.chatLogs[:0]
	for _, log := range r.s.chatLogs {
		if log.ChildID != childID {
			kept = append(kept, log)
		}
	}
	r.s.chatLogs = kept
	return nil
}
