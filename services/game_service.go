package services

import (
	"errors"
	"fmt"
	"time"

	"FaithNest/models"
	"FaithNest/repositories"
)

type GameService struct {
	Repo     repositories.GameRepository
	UserRepo repositories.UserRepository
	Alerts   *AlertService
}

func NewGameService(repo repositories.GameRepository, userRepo repositories.UserRepository, alerts *AlertService) *GameService {
	return &GameService{Repo: repo, UserRepo: userRepo, Alerts: alerts}
}

func (s *GameService) List(callerID uint) ([]models.GameRecord, error) {
	childIDs, err := householdChildIDs(s.UserRepo, callerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByChildren(childIDs)
}

// SetApproval is the parent ruling on a game. Approved may be true, false or
// nil (back to undecided).
func (s *GameService) SetApproval(callerID, id uint, approved *bool) (models.GameRecord, error) {
	childIDs, err := householdChildIDs(s.UserRepo, callerID)
	if err != nil {
		return models.GameRecord{}, err
	}
	record, err := s.Repo.PatchScoped(childIDs, id, func(r *models.GameRecord) {
		r.Approved = approved
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.GameRecord{}, ErrNotFound
		}
		return models.GameRecord{}, err
	}
	return record, nil
}

// Report is the child device posting play time. An existing record for the
// same game accumulates; a game the parent has not approved raises an alert.
func (s *GameService) Report(childID uint, gameName string, minutes int, contentRating string) (models.GameRecord, error) {
	if gameName == "" || minutes < 0 {
		return models.GameRecord{}, ErrValidation
	}
	child, err := s.UserRepo.FindByID(childID)
	if err != nil || child.Role != models.RoleChild {
		return models.GameRecord{}, ErrForbidden
	}

	now := time.Now()
	record := models.GameRecord{
		ChildID:       childID,
		GameName:      gameName,
		ContentRating: contentRating,
		ScreenTime:    minutes,
		LastPlayed:    &now,
	}
	if err := s.Repo.Accumulate(&record); err != nil {
		return models.GameRecord{}, err
	}

	unapproved := record.Approved == nil || !*record.Approved
	if unapproved && child.ParentID != nil {
		content := fmt.Sprintf("%s played %s (%d min) without approval", child.DisplayName, gameName, minutes)
		if err := s.Alerts.Raise(*child.ParentID, &childID, models.AlertGameActivity, content); err != nil {
			return models.GameRecord{}, err
		}
	}
	return record, nil
}
