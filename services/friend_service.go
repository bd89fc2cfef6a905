package services

import (
	"errors"
	"fmt"

	"FaithNest/models"
	"FaithNest/repositories"
)

type FriendService struct {
	Repo     repositories.FriendRequestRepository
	UserRepo repositories.UserRepository
	Alerts   *AlertService
}

func NewFriendService(repo repositories.FriendRequestRepository, userRepo repositories.UserRepository, alerts *AlertService) *FriendService {
	return &FriendService{Repo: repo, UserRepo: userRepo, Alerts: alerts}
}

func (s *FriendService) List(callerID uint) ([]models.FriendRequest, error) {
	childIDs, err := householdChildIDs(s.UserRepo, callerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByChildren(childIDs)
}

// Report records an incoming friend request for a child and alerts the
// child's parent so it shows up on the dashboard.
func (s *FriendService) Report(childID uint, friendName string) (models.FriendRequest, error) {
	if friendName == "" {
		return models.FriendRequest{}, ErrValidation
	}
	child, err := s.UserRepo.FindByID(childID)
	if err != nil || child.Role != models.RoleChild {
		return models.FriendRequest{}, ErrForbidden
	}

	req := models.FriendRequest{
		ChildID:    childID,
		FriendName: friendName,
		Status:     models.FriendRequestPending,
	}
	if err := s.Repo.Create(&req); err != nil {
		return models.FriendRequest{}, err
	}

	if child.ParentID != nil {
		content := fmt.Sprintf("%s received a friend request from %s", child.DisplayName, friendName)
		if err := s.Alerts.Raise(*child.ParentID, &childID, models.AlertFriendRequest, content); err != nil {
			return models.FriendRequest{}, err
		}
	}
	return req, nil
}

func (s *FriendService) UpdateStatus(callerID, id uint, status string) (models.FriendRequest, error) {
	switch status {
	case models.FriendRequestPending, models.FriendRequestApproved, models.FriendRequestDenied:
	default:
		return models.FriendRequest{}, ErrValidation
	}

	childIDs, err := householdChildIDs(s.UserRepo, callerID)
	if err != nil {
		return models.FriendRequest{}, err
	}
	req, err := s.Repo.PatchScoped(childIDs, id, func(r *models.FriendRequest) {
		r.Status = status
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.FriendRequest{}, ErrNotFound
		}
		return models.FriendRequest{}, err
	}
	return req, nil
}

func (s *FriendService) Delete(callerID, id uint) error {
	childIDs, err := householdChildIDs(s.UserRepo, callerID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(childIDs, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
