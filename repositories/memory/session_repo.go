package memory

import (
	"FaithNest/models"
	"FaithNest/repositories"
)

type SessionRepo struct {
	s *Store
}

func NewSessionRepository(s *Store) repositories.SessionRepository {
	return &SessionRepo{s: s}
}

func (r *SessionRepo) Save(session models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[session.Token] = session
	return nil
}

func (r *SessionRepo) Find(token string) (models.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.sessions[token]
	if !ok {
		return models.Session{}, repositories.ErrNotFound
	}
	return session, nil
}

func (r *SessionRepo) Delete(token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, token)
	return nil
}

func (r *SessionRepo) DeleteByUser(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for token, session := range r.s.sessions {
		if session.UserID == userID {
			delete(r.s.sessions, token)
		}
	}
	return nil
}
