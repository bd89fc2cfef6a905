package services

import (
	"errors"

	"FaithNest/models"
	"FaithNest/repositories"
)

type AlertService struct {
	Repo repositories.AlertRepository
}

func NewAlertService(repo repositories.AlertRepository) *AlertService {
	return &AlertService{Repo: repo}
}

func (s *AlertService) List(userID uint) ([]models.Alert, error) {
	return s.Repo.ListByUser(userID)
}

// Recent returns the owner's alerts that have not been handled yet.
func (s *AlertService) Recent(userID uint) ([]models.Alert, error) {
	alerts, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	recent := []models.Alert{}
	for _, a := range alerts {
		if !a.Handled {
			recent = append(recent, a)
		}
	}
	return recent, nil
}

func (s *AlertService) UnreadCount(userID uint) (int, error) {
	alerts, err := s.Repo.ListByUser(userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, a := range alerts {
		if !a.Read {
			count++
		}
	}
	return count, nil
}

type AlertPatch struct {
	Read    *bool
	Handled *bool
}

func (s *AlertService) Mark(userID, id uint, patch AlertPatch) (models.Alert, error) {
	alert, err := s.Repo.Patch(userID, id, func(a *models.Alert) {
		if patch.Read != nil {
			a.Read = *patch.Read
		}
		if patch.Handled != nil {
			a.Handled = *patch.Handled
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Alert{}, ErrNotFound
		}
		return models.Alert{}, err
	}
	return alert, nil
}

// Raise is used by the monitoring services to notify a user about activity
// on one of its children.
func (s *AlertService) Raise(userID uint, childID *uint, alertType, content string) error {
	alert := models.Alert{
		UserID:  userID,
		ChildID: childID,
		Type:    alertType,
		Content: content,
	}
	return s.Repo.Create(&alert)
}
