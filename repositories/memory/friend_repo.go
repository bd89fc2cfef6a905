package memory

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type FriendRequestRepo struct {
	s *Store
}

func NewFriendRequestRepository(s *Store) repositories.FriendRequestRepository {
	return &FriendRequestRepo{s: s}
}

func (r *FriendRequestRepo) ListByChildren(childIDs []uint) ([]models.FriendRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.FriendRequest{}
	for _, req := range r.s.friendRequests {
		if contains(childIDs, req.ChildID) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *FriendRequestRepo) Create(req *models.FriendRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req.ID = r.s.nextID()
	if req.RequestDate.IsZero() {
		req.RequestDate = time.Now()
	}
	r.s.friendRequests = append(r.s.friendRequests, *req)
	return nil
}

func (r *FriendRequestRepo) PatchScoped(childIDs []uint, id uint, apply func(*models.FriendRequest)) (models.FriendRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.friendRequests {
		if r.s.friendRequests[i].ID == id && contains(childIDs, r.s.friendRequests[i].ChildID) {
			apply(&r.s.friendRequests[i])
			return r.s.friendRequests[i], nil
		}
	}
	return models.FriendRequest{}, repositories.ErrNotFound
}

func (r *FriendRequestRepo) Delete(childIDs []uint, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, req := range r.s.friendRequests {
		if req.ID == id && contains(childIDs, req.ChildID) {
			r.s.friendRequests = append(r.s.friendRequests[:i], r.s.friendRequests[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *FriendRequestRepo) DeleteByChild(childID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.friendRequests[:0]
	for _, req := range r.s.friendRequests {
		if req.ChildID != childID {
			kept = append(kept, req)
		}
	}
	r.s.friendRequests = kept
	return nil
}
