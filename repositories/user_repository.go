package repositories

import "FaithNest/models"

type UserRepository interface {
	// Create assigns the id. Returns ErrDuplicate when the username is taken;
	// the uniqueness check and the insert happen under one lock/transaction.
	Create(user *models.User) error
	FindByID(id uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	// ListChildren returns child users of the given parent in insertion order.
	ListChildren(parentID uint) ([]models.User, error)
	Delete(id uint) error
}
