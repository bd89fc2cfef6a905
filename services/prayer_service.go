package services

import (
	"errors"

	"FaithNest/models"
	"FaithNest/repositories"
)

type PrayerService struct {
	Repo repositories.PrayerRepository
}

func NewPrayerService(repo repositories.PrayerRepository) *PrayerService {
	return &PrayerService{Repo: repo}
}

// PrayerPatch carries a partial update; nil fields keep their prior value.
type PrayerPatch struct {
	Title   *string
	Content *string
	Date    *string
}

func (s *PrayerService) List(userID uint) ([]models.PrayerEntry, error) {
	return s.Repo.ListByUser(userID)
}

func (s *PrayerService) Create(userID uint, title, content, date string) (models.PrayerEntry, error) {
	entry := models.PrayerEntry{
		UserID:  userID,
		Title:   title,
		Content: content,
		Date:    date,
	}
	if err := s.Repo.Create(&entry); err != nil {
		return models.PrayerEntry{}, err
	}
	return entry, nil
}

func (s *PrayerService) Update(userID, id uint, patch PrayerPatch) (models.PrayerEntry, error) {
	entry, err := s.Repo.Patch(userID, id, func(e *models.PrayerEntry) {
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Content != nil {
			e.Content = *patch.Content
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.PrayerEntry{}, ErrNotFound
		}
		return models.PrayerEntry{}, err
	}
	return entry, nil
}

func (s *PrayerService) Delete(userID, id uint) error {
	if err := s.Repo.Delete(userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
