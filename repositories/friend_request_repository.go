package repositories

import "FaithNest/models"

type FriendRequestRepository interface {
	// ListByChildren returns requests for any of the given child ids in
	// insertion order. The caller builds the visible set (itself, or its
	// children for a parent session).
	ListByChildren(childIDs []uint) ([]models.FriendRequest, error)
	Create(req *models.FriendRequest) error
	// PatchScoped mutates the request in place under the write lock; the
	// lookup is limited to the given child ids.
	PatchScoped(childIDs []uint, id uint, apply func(*models.FriendRequest)) (models.FriendRequest, error)
	Delete(childIDs []uint, id uint) error
	DeleteByChild(childID uint) error
}
