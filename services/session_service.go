package services

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 24 * time.Hour

// SessionService maps opaque tokens to user ids. Tokens are random uuids,
// never derived from user data, so the only way to resolve one is through
// the store and logout can actually revoke it.
type SessionService struct {
	Repo repositories.SessionRepository
	TTL  time.Duration
}

func NewSessionService(repo repositories.SessionRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{Repo: repo, TTL: ttl}
}

func (s *SessionService) Issue(userID uint) (string, error) {
	now := time.Now()
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.TTL),
		CreatedAt: now,
	}
	if err := s.Repo.Save(session); err != nil {
		return "", err
	}
	return session.Token, nil
}

// Resolve returns the user id bound to the token. Missing, unknown and
// expired tokens all come back as ErrUnauthorized; expired sessions are
// dropped from the store on the way out.
func (s *SessionService) Resolve(token string) (uint, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}
	session, err := s.Repo.Find(token)
	if err != nil {
		return 0, ErrUnauthorized
	}
	if session.Expired(time.Now()) {
		_ = s.Repo.Delete(token)
		return 0, ErrUnauthorized
	}
	return session.UserID, nil
}

// Invalidate is idempotent; logging out twice is fine.
func (s *SessionService) Invalidate(token string) error {
	return s.Repo.Delete(token)
}

func (s *SessionService) InvalidateUser(userID uint) error {
	return s.Repo.DeleteByUser(userID)
}
