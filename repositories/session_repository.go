package repositories

import "FaithNest/models"

type SessionRepository interface {
	Save(session models.Session) error
	Find(token string) (models.Session, error)
	// Delete is idempotent; deleting an unknown token is not an error.
	Delete(token string) error
	DeleteByUser(userID uint) error
}
