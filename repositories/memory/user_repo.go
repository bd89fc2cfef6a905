package memory

import (
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type UserRepo struct {
	s *Store
}

func NewUserRepository(s *Store) repositories.UserRepository {
	return &UserRepo{s: s}
}

func (r *UserRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return repositories.ErrDuplicate
		}
	}

	user.ID = r.s.nextID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	stored := *user
	r.s.users[user.ID] = &stored
	r.s.userOrder = append(r.s.userOrder, user.ID)
	return nil
}

func (r *UserRepo) FindByID(id uint) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return *user, nil
}

func (r *UserRepo) FindByUsername(username string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.userOrder {
		if u, ok := r.s.users[id]; ok && u.Username == username {
			return *u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (r *UserRepo) ListChildren(parentID uint) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	children := []models.User{}
	for _, id := range r.s.userOrder {
		u, ok := r.s.users[id]
		if !ok {
			continue
		}
		if u.Role == models.RoleChild && u.ParentID != nil && *u.ParentID == parentID {
			children = append(children, *u)
		}
	}
	return children, nil
}

func (r *UserRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.users, id)
	for i, v := range r.s.userOrder {
		if v == id {
			r.s.userOrder = append(r.s.userOrder[:i], r.s.userOrder[i+1:]...)
			break
		}
	}
	return nil
}
